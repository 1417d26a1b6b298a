package enum

import "encoding/json"

// SettlementKind is the shape of the payment breakdown chosen at checkout.
type SettlementKind int

const (
	SettlementSingle      SettlementKind = 0
	SettlementMixed       SettlementKind = 1
	SettlementStoreCredit SettlementKind = 2
)

func (k SettlementKind) String() string {
	switch k {
	case SettlementSingle:
		return "SINGLE"
	case SettlementMixed:
		return "MIXED"
	case SettlementStoreCredit:
		return "STORE_CREDIT"
	}
	return "SINGLE"
}

func (k SettlementKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *SettlementKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = SettlementKind(i)
		return nil
	}
	switch str {
	case "MIXED":
		*k = SettlementMixed
	case "STORE_CREDIT":
		*k = SettlementStoreCredit
	default:
		*k = SettlementSingle
	}
	return nil
}
