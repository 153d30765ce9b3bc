package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// VehicleStatus represents where a vehicle sits in its inventory lifecycle.
// "Sold" doubles as the removed-from-inventory state set by purchase intake,
// a label inherited from the original schema and kept for compatibility.
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "Available"
	VehicleStatusReserved    VehicleStatus = "Reserved"
	VehicleStatusSold        VehicleStatus = "Sold"
	VehicleStatusTransferred VehicleStatus = "Transferred"
)

func (s VehicleStatus) String() string {
	return string(s)
}

// Valid reports whether the value is one of the known statuses.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusReserved, VehicleStatusSold, VehicleStatusTransferred:
		return true
	}
	return false
}

func (s VehicleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *VehicleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = VehicleStatus(str)
	return nil
}

func (s VehicleStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *VehicleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = VehicleStatusAvailable
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = VehicleStatus(v)
	case []byte:
		*s = VehicleStatus(string(v))
	}
	return nil
}
