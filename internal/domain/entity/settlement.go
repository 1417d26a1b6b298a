package entity

import (
	"encoding/json"

	"github.com/marianotrogo/client-pos-ind/internal/domain/enum"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

// Settlement is the payment breakdown proposed for a sale. It is a tagged
// variant: Kind selects which fields are meaningful, and validation happens
// exhaustively in Reconcile, only at confirmation time.
type Settlement struct {
	Kind          enum.SettlementKind `json:"kind"`
	Cash          int64               `json:"-"`
	Digital       int64               `json:"-"`
	DigitalMethod enum.PaymentMethod  `json:"digital_method,omitempty"`
}

// PaymentDetail is one settled amount under a specific method.
type PaymentDetail struct {
	Type   enum.PaymentMethod `json:"type"`
	Amount int64              `json:"-"`
}

// MarshalJSON converts the cent amount to a decimal for API payloads.
func (d PaymentDetail) MarshalJSON() ([]byte, error) {
	type Alias PaymentDetail
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(d),
		Amount: FromCents(d.Amount),
	})
}

// UnmarshalJSON converts a decimal amount to cents.
func (d *PaymentDetail) UnmarshalJSON(data []byte) error {
	type Alias PaymentDetail
	aux := &struct {
		*Alias
		Amount float64 `json:"amount"`
	}{Alias: (*Alias)(d)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	d.Amount = ToCents(aux.Amount)
	return nil
}

// PaymentPlan is a reconciled settlement ready for submission: the tag the
// backend records as the sale's payment type plus the per-method amounts.
type PaymentPlan struct {
	Type    enum.PaymentMethod `json:"payment_type"`
	Details []PaymentDetail    `json:"payment_details"`
}

// Reconcile validates the settlement against the cart total (cents) and
// produces the payment plan. hasClient reports whether a client is selected
// on the session; store credit cannot settle without one.
func (s Settlement) Reconcile(total int64, hasClient bool) (*PaymentPlan, error) {
	switch s.Kind {
	case enum.SettlementStoreCredit:
		if !hasClient {
			return nil, apperror.ErrClientRequired
		}
		return &PaymentPlan{
			Type:    enum.PaymentStoreCredit,
			Details: []PaymentDetail{{Type: enum.PaymentStoreCredit, Amount: total}},
		}, nil

	case enum.SettlementMixed:
		if s.Cash+s.Digital != total {
			return nil, apperror.ErrAmountMismatch
		}
		if !s.DigitalMethod.IsDigital() {
			return nil, apperror.ErrDigitalMethodRequired
		}
		return &PaymentPlan{
			Type: enum.PaymentMixed,
			Details: []PaymentDetail{
				{Type: enum.PaymentCash, Amount: s.Cash},
				{Type: s.DigitalMethod, Amount: s.Digital},
			},
		}, nil

	default: // single method
		if s.Cash == total && s.Digital == 0 {
			return &PaymentPlan{
				Type:    enum.PaymentCash,
				Details: []PaymentDetail{{Type: enum.PaymentCash, Amount: total}},
			}, nil
		}
		if s.Digital == total && s.Cash == 0 {
			if !s.DigitalMethod.IsDigital() {
				return nil, apperror.ErrDigitalMethodRequired
			}
			return &PaymentPlan{
				Type:    s.DigitalMethod,
				Details: []PaymentDetail{{Type: s.DigitalMethod, Amount: total}},
			}, nil
		}
		return nil, apperror.ErrAmountMismatch
	}
}
