package enum

import (
	"database/sql/driver"
)

// AccountStatus is shared by users and dealers (branches): both are either
// active or disabled by an administrator.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

func (s AccountStatus) String() string {
	return string(s)
}

func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusInactive
}

func (s AccountStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *AccountStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AccountStatusActive
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = AccountStatus(v)
	case []byte:
		*s = AccountStatus(string(v))
	}
	return nil
}
