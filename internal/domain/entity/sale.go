package entity

import (
	"time"

	"github.com/marianotrogo/client-pos-ind/internal/domain/enum"
)

// Sale is the authoritative record the backend returns after persisting a
// submitted sale. The ticket number and timestamp are server-assigned and
// are what the receipt prints.
type Sale struct {
	ID             int64              `json:"id"`
	Number         int64              `json:"number"`
	CreatedAt      time.Time          `json:"createdAt"`
	ClientID       *int64             `json:"clientId,omitempty"`
	Client         *Client            `json:"client,omitempty"`
	UserID         int64              `json:"userId"`
	Subtotal       float64            `json:"subtotal"`
	Discount       float64            `json:"discount"`
	Surcharge      float64            `json:"surcharge"`
	Total          float64            `json:"total"`
	PaymentType    enum.PaymentMethod `json:"paymentType"`
	PaymentDetails []PaymentDetail    `json:"paymentDetails,omitempty"`
	Items          []SaleItem         `json:"items"`
	IsExchange     bool               `json:"isExchange"`
}

// SaleItem mirrors a cart line item in the backend's sale record.
type SaleItem struct {
	ProductID   int64   `json:"productId"`
	VariantID   int64   `json:"variantId"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
	Subtotal    float64 `json:"subtotal"`
	IsReturn    bool    `json:"isReturn"`
}
