package entity

// BusinessSettings is the store configuration used for receipt rendering,
// fetched from the backend settings endpoint.
type BusinessSettings struct {
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	CUIT         string `json:"cuit,omitempty"`
	IVACondition string `json:"ivaCondition,omitempty"`
	HeaderText   string `json:"headerText,omitempty"`
	FooterText   string `json:"footerText,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	QRLink       string `json:"qrLink,omitempty"`
}

// DefaultBusinessSettings is the fallback used when the settings fetch
// fails; printing proceeds with generic business info rather than blocking.
func DefaultBusinessSettings() *BusinessSettings {
	return &BusinessSettings{
		BusinessName: "MI TIENDA",
		Address:      "Direccion generica",
		Phone:        "0000-000000",
	}
}
