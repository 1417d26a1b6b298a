package gateway

import (
	"context"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
)

// SaleSubmission is the payload posted to the sales backend when a
// composed sale is confirmed. Amounts are decimals on the wire; the
// backend is the single point of truth for stock and balance consistency.
type SaleSubmission struct {
	ClientID       *int64                 `json:"clientId"`
	UserID         int64                  `json:"userId"`
	Subtotal       float64                `json:"subtotal"`
	Discount       float64                `json:"discount"`
	Surcharge      float64                `json:"surcharge"`
	Total          float64                `json:"total"`
	PaymentType    string                 `json:"paymentType"`
	PaymentDetails []entity.PaymentDetail `json:"paymentDetails"`
	Items          []entity.SaleItem      `json:"items"`
	IsExchange     bool                   `json:"isExchange"`
}

// Backend is the REST client surface of the external POS backend. The
// bearer token of the acting cashier is forwarded on every call.
type Backend interface {
	// SearchProducts queries products by code or name.
	SearchProducts(ctx context.Context, token, query string) ([]entity.Product, error)
	// SearchClients queries clients by name or DNI.
	SearchClients(ctx context.Context, token, query string) ([]entity.Client, error)
	// CreateSale submits a composed sale and returns the authoritative
	// sale record with its server-assigned ticket number.
	CreateSale(ctx context.Context, token string, sub *SaleSubmission) (*entity.Sale, error)
	// GetSettings fetches the business configuration used for receipts.
	GetSettings(ctx context.Context, token string) (*entity.BusinessSettings, error)
}
