package entity

import (
	"time"

	"github.com/autolanka/vsms-api/internal/domain/enum"
)

// Seller is the party a vehicle was acquired from. Uniqueness is soft:
// purchases upsert on (tenant_id, phone), last write wins for the contact
// fields.
type Seller struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	TenantID   *uint           `gorm:"index:idx_sellers_tenant_phone" json:"tenant_id,omitempty"`
	Name       string          `gorm:"size:150;not null" json:"name"`
	NICOrReg   *string         `gorm:"size:100;column:nic_or_reg" json:"nic_or_reg,omitempty"`
	Address    string          `gorm:"size:255" json:"address"`
	Phone      string          `gorm:"size:20;index:idx_sellers_tenant_phone" json:"phone"`
	Email      *string         `gorm:"size:150" json:"email,omitempty"`
	SellerType enum.SellerType `gorm:"size:20;default:individual" json:"seller_type"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName returns the table name for the Seller model
func (Seller) TableName() string {
	return "sellers"
}
