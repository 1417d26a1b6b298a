package entity

import "encoding/json"

// Client is a reference to a customer account on the sales backend.
// Balance is the running store-credit balance in cents; it is read-only
// here and mutated only by the backend when a store-credit sale posts.
type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	DNI     string `json:"dni,omitempty"`
	Balance int64  `json:"-"`
}

// MarshalJSON converts the cent balance to a decimal for API responses.
func (c Client) MarshalJSON() ([]byte, error) {
	type Alias Client
	return json.Marshal(&struct {
		Alias
		Balance float64 `json:"balance"`
	}{
		Alias:   Alias(c),
		Balance: FromCents(c.Balance),
	})
}

// UnmarshalJSON converts the backend's decimal balance to cents.
func (c *Client) UnmarshalJSON(data []byte) error {
	type Alias Client
	aux := &struct {
		*Alias
		Balance float64 `json:"balance"`
	}{Alias: (*Alias)(c)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	c.Balance = ToCents(aux.Balance)
	return nil
}
