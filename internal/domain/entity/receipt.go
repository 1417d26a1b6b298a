package entity

import "github.com/marianotrogo/client-pos-ind/internal/domain/enum"

// ReceiptHeader holds the business header printed at the top of a ticket.
type ReceiptHeader struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	HeaderText   string `json:"header_text,omitempty"`
}

// ReceiptItem is a single printed line item. Quantity is shown negative for
// returned merchandise.
type ReceiptItem struct {
	Description string  `json:"description"`
	Size        string  `json:"size,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	IsReturn    bool    `json:"is_return"`
}

// Receipt is a value object representing a printable sale ticket. It is
// composed from the submitted sale record and business settings at print
// time, never persisted.
type Receipt struct {
	Header       ReceiptHeader      `json:"header"`
	Number       int64              `json:"number"`
	Date         string             `json:"date"`
	ClientName   string             `json:"client_name"`
	Operation    string             `json:"operation"` // VENTA or CAMBIO
	Items        []ReceiptItem      `json:"items"`
	Subtotal     float64            `json:"subtotal"`
	DiscountPct  float64            `json:"discount_pct"`
	SurchargePct float64            `json:"surcharge_pct"`
	Total        float64            `json:"total"`
	PaymentType  enum.PaymentMethod `json:"payment_type"`
	QRLink       string             `json:"qr_link,omitempty"`
	FooterText   string             `json:"footer_text,omitempty"`
}
