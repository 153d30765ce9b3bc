package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SellerType represents the type of party a vehicle was acquired from
type SellerType string

const (
	SellerTypeIndividual SellerType = "individual"
	SellerTypeDealer     SellerType = "dealer"
	SellerTypeAuction    SellerType = "auction"
)

func (t SellerType) String() string {
	return string(t)
}

// Valid reports whether the value is one of the known seller types.
func (t SellerType) Valid() bool {
	switch t {
	case SellerTypeIndividual, SellerTypeDealer, SellerTypeAuction:
		return true
	}
	return false
}

func (t SellerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *SellerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = SellerType(str)
	return nil
}

func (t SellerType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *SellerType) Scan(value interface{}) error {
	if value == nil {
		*t = SellerTypeIndividual
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = SellerType(v)
	case []byte:
		*t = SellerType(string(v))
	}
	return nil
}
