package entity

import "math"

// Monetary amounts are stored in cents (int64) everywhere inside the
// service and converted to decimals only at the JSON boundary. Settlement
// reconciliation compares cent values exactly, so binary floating point
// drift on sums like 0.1+0.2 can never produce a spurious mismatch.

// ToCents converts a decimal amount to cents, rounding half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts cents back to a decimal amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// PercentOf returns pct percent of a cent amount, rounded half away from
// zero. The base may be negative (returns exceeding forward sales).
func PercentOf(cents int64, pct float64) int64 {
	return int64(math.Round(float64(cents) * pct / 100))
}

// ClampPercent constrains a user-entered percentage to [0,100].
func ClampPercent(pct float64) float64 {
	if pct < 0 || math.IsNaN(pct) {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
