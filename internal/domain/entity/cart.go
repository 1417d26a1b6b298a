package entity

import "encoding/json"

// LineItem is one product variant and quantity entry within a cart.
// UnitPrice and Subtotal are cents. Subtotal is always positive regardless
// of IsReturn; the sign is applied at aggregation, not storage.
type LineItem struct {
	VariantID   int64  `json:"variant_id"`
	ProductID   int64  `json:"product_id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Size        string `json:"size"`
	UnitPrice   int64  `json:"-"`
	Quantity    int    `json:"quantity"`
	IsReturn    bool   `json:"is_return"`
}

// Subtotal returns unit price times quantity, in cents.
func (li LineItem) Subtotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// MarshalJSON converts cent fields to decimals for API responses.
func (li LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(li),
		UnitPrice: FromCents(li.UnitPrice),
		Subtotal:  FromCents(li.Subtotal()),
	})
}

// CartTotals carries every aggregate derived from a cart's line items plus
// the discount/surcharge percentages. All amounts are cents. Totals are
// recomputed fresh from the lines on every read, never stored, so a failed
// mutation cannot leave them out of sync.
type CartTotals struct {
	ForwardTotal    int64   `json:"-"`
	ReturnsTotal    int64   `json:"-"`
	Subtotal        int64   `json:"-"`
	DiscountPct     float64 `json:"discount_pct"`
	SurchargePct    float64 `json:"surcharge_pct"`
	DiscountAmount  int64   `json:"-"`
	SurchargeAmount int64   `json:"-"`
	Total           int64   `json:"-"`

	// Difference is forward minus returns before discount/surcharge.
	// Informational only, shown while composing an exchange; it does not
	// alter the binding Total used for settlement.
	Difference int64 `json:"-"`
	IsExchange bool  `json:"is_exchange"`
}

// MarshalJSON converts cent fields to decimals for API responses.
func (t CartTotals) MarshalJSON() ([]byte, error) {
	type Alias CartTotals
	return json.Marshal(&struct {
		Alias
		ForwardTotal    float64 `json:"forward_total"`
		ReturnsTotal    float64 `json:"returns_total"`
		Subtotal        float64 `json:"subtotal"`
		DiscountAmount  float64 `json:"discount_amount"`
		SurchargeAmount float64 `json:"surcharge_amount"`
		Total           float64 `json:"total"`
		Difference      float64 `json:"difference"`
	}{
		Alias:           Alias(t),
		ForwardTotal:    FromCents(t.ForwardTotal),
		ReturnsTotal:    FromCents(t.ReturnsTotal),
		Subtotal:        FromCents(t.Subtotal),
		DiscountAmount:  FromCents(t.DiscountAmount),
		SurchargeAmount: FromCents(t.SurchargeAmount),
		Total:           FromCents(t.Total),
		Difference:      FromCents(t.Difference),
	})
}

// ComputeTotals derives the cart aggregates from the line items.
// Returned merchandise counts against forward sales, so the subtotal may
// be negative when returns exceed new purchases.
func ComputeTotals(lines []LineItem, discountPct, surchargePct float64) CartTotals {
	t := CartTotals{
		DiscountPct:  ClampPercent(discountPct),
		SurchargePct: ClampPercent(surchargePct),
	}

	for _, li := range lines {
		if li.IsReturn {
			t.ReturnsTotal += li.Subtotal()
			t.IsExchange = true
		} else {
			t.ForwardTotal += li.Subtotal()
		}
	}

	t.Subtotal = t.ForwardTotal - t.ReturnsTotal
	t.Difference = t.ForwardTotal - t.ReturnsTotal
	t.DiscountAmount = PercentOf(t.Subtotal, t.DiscountPct)
	t.SurchargeAmount = PercentOf(t.Subtotal, t.SurchargePct)
	t.Total = t.Subtotal - t.DiscountAmount + t.SurchargeAmount

	return t
}

// CartView is the composed state of a sale session returned to callers.
type CartView struct {
	SessionID string     `json:"session_id"`
	Lines     []LineItem `json:"lines"`
	Client    *Client    `json:"client,omitempty"`
	Totals    CartTotals `json:"totals"`
}
