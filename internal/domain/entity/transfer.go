package entity

import (
	"time"

	"github.com/autolanka/vsms-api/internal/domain/enum"
)

// Transfer records the relocation of a vehicle between two branches. The
// dealer reassignment side effect fires on the pending -> completed edge.
type Transfer struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	TenantID          *uint               `gorm:"index" json:"tenant_id,omitempty"`
	VehicleID         uint                `gorm:"index;not null" json:"vehicle_id"`
	FromDealerID      *uint               `gorm:"index" json:"from_dealer_id,omitempty"`
	ToDealerID        *uint               `gorm:"index" json:"to_dealer_id,omitempty"`
	TransferDate      time.Time           `gorm:"type:date;not null" json:"transfer_date"`
	TransferPrice     float64             `gorm:"type:decimal(12,2);default:0" json:"transfer_price"`
	TransportCost     float64             `gorm:"type:decimal(12,2);default:0" json:"transport_cost"`
	Status            enum.TransferStatus `gorm:"size:20;default:pending" json:"status"`
	ResponsiblePerson *string             `gorm:"size:255" json:"responsible_person,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`

	Vehicle    *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	FromDealer *Dealer  `gorm:"foreignKey:FromDealerID" json:"from_dealer,omitempty"`
	ToDealer   *Dealer  `gorm:"foreignKey:ToDealerID" json:"to_dealer,omitempty"`
	Tenant     *Tenant  `gorm:"foreignKey:TenantID" json:"-"`
}

// TableName returns the table name for the Transfer model
func (Transfer) TableName() string {
	return "transfers"
}
