package entity

import (
	"time"

	"github.com/autolanka/vsms-api/internal/domain/enum"
)

// Dealer represents a branch of the dealership. Vehicles point at their
// current branch; transfers move vehicles between branches.
type Dealer struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	TenantID  *uint              `gorm:"index" json:"tenant_id,omitempty"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Address   *string            `gorm:"size:255" json:"address,omitempty"`
	Email     *string            `gorm:"size:255" json:"email,omitempty"`
	Phone     *string            `gorm:"size:50" json:"phone,omitempty"`
	Status    enum.AccountStatus `gorm:"size:20;default:active" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// TableName returns the table name for the Dealer model
func (Dealer) TableName() string {
	return "dealers"
}
