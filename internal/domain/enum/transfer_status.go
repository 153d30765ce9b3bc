package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransferStatus represents the status of an inter-branch transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusCompleted TransferStatus = "completed"
)

func (s TransferStatus) String() string {
	return string(s)
}

// Valid reports whether the value is one of the known statuses.
func (s TransferStatus) Valid() bool {
	return s == TransferStatusPending || s == TransferStatusCompleted
}

func (s TransferStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *TransferStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = TransferStatus(str)
	return nil
}

func (s TransferStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *TransferStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TransferStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = TransferStatus(v)
	case []byte:
		*s = TransferStatus(string(v))
	}
	return nil
}
