package entity

import "encoding/json"

// Product is a catalog entry returned by the backend product search.
type Product struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Variants    []Variant `json:"variants"`
}

// HasStock reports whether any variant can still be sold.
func (p Product) HasStock() bool {
	for _, v := range p.Variants {
		if v.Stock > 0 {
			return true
		}
	}
	return false
}

// Variant is a sellable size of a product. Price is cents.
type Variant struct {
	ID    int64  `json:"id"`
	Size  string `json:"size"`
	Stock int    `json:"stock"`
	Price int64  `json:"-"`
}

// MarshalJSON converts the cent price to a decimal for API responses.
func (v Variant) MarshalJSON() ([]byte, error) {
	type Alias Variant
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(v),
		Price: FromCents(v.Price),
	})
}

// UnmarshalJSON converts the backend's decimal price to cents.
func (v *Variant) UnmarshalJSON(data []byte) error {
	type Alias Variant
	aux := &struct {
		*Alias
		Price float64 `json:"price"`
	}{Alias: (*Alias)(v)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	v.Price = ToCents(aux.Price)
	return nil
}
