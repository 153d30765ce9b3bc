package entity

import "time"

// Buyer is the party a vehicle was sold to. A fresh row is inserted for
// every sale; there is no dedup.
type Buyer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TenantID  *uint     `gorm:"index" json:"tenant_id,omitempty"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	NICOrReg  string    `gorm:"size:100;column:nic_or_reg" json:"nic_or_reg"`
	Address   string    `gorm:"size:255" json:"address"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Buyer model
func (Buyer) TableName() string {
	return "buyers"
}
