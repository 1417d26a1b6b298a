package enum

// PaymentMethod identifies how (part of) a sale is settled. The codes are
// the wire values the sales backend expects.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "EFECTIVO"
	PaymentTransfer    PaymentMethod = "TRANSFERENCIA"
	PaymentCard        PaymentMethod = "TARJETA"
	PaymentStoreCredit PaymentMethod = "CCA"
	PaymentMixed       PaymentMethod = "MIXTO"
)

// DigitalMethods lists the methods selectable as the digital leg of a
// single or mixed settlement.
var DigitalMethods = []PaymentMethod{PaymentTransfer, PaymentCard}

// IsDigital reports whether m is an accepted digital payment method.
func (m PaymentMethod) IsDigital() bool {
	for _, d := range DigitalMethods {
		if m == d {
			return true
		}
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
