package request

// AddLineRequest adds a product variant to the cart. Price is a decimal;
// it is converted to cents at the handler boundary.
type AddLineRequest struct {
	ProductID   int64   `json:"product_id" binding:"required"`
	VariantID   int64   `json:"variant_id" binding:"required"`
	Code        string  `json:"code" binding:"required,max=100"`
	Description string  `json:"description" binding:"required,max=255"`
	Size        string  `json:"size" binding:"max=50"`
	Price       float64 `json:"price" binding:"min=0"`
}

// SetQuantityRequest replaces a line's quantity. Values below 1 clamp to 1.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AdjustmentsRequest sets discount and surcharge percentages. Out-of-range
// values are rejected by binding rather than silently accepted.
type AdjustmentsRequest struct {
	DiscountPct  float64 `json:"discount_pct" binding:"min=0,max=100"`
	SurchargePct float64 `json:"surcharge_pct" binding:"min=0,max=100"`
}

// SelectClientRequest attaches a client to the session. A null client
// clears the selection.
type SelectClientRequest struct {
	Client *ClientRef `json:"client"`
}

// ClientRef is the client account chosen from a lookup result.
type ClientRef struct {
	ID      int64   `json:"id" binding:"required"`
	Name    string  `json:"name" binding:"required,max=255"`
	DNI     string  `json:"dni" binding:"max=20"`
	Balance float64 `json:"balance"`
}

// ConfirmRequest settles and submits the composed sale.
type ConfirmRequest struct {
	Kind          string  `json:"kind" binding:"required,oneof=SINGLE MIXED STORE_CREDIT"`
	Cash          float64 `json:"cash" binding:"min=0"`
	Digital       float64 `json:"digital" binding:"min=0"`
	DigitalMethod string  `json:"digital_method" binding:"omitempty,oneof=TRANSFERENCIA TARJETA"`
	Print         bool    `json:"print"`
}
