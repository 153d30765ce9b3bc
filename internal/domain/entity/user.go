package entity

import (
	"time"

	"github.com/autolanka/vsms-api/internal/domain/enum"
)

// User represents a staff account. Accounts are created by administrators;
// self-registration is disabled.
type User struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	TenantID  *uint              `gorm:"index" json:"tenant_id,omitempty"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Email     string             `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string             `gorm:"size:255;not null" json:"-"`
	Role      string             `gorm:"size:50;default:staff" json:"role"`
	Status    enum.AccountStatus `gorm:"size:20;default:active" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
