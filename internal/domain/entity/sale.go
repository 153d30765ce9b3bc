package entity

import (
	"time"
)

// Sale records the disposition of a vehicle to a buyer. SellerID is an
// explicit nullable foreign key populated at creation time; SalespersonName
// is kept only as a denormalized display cache of the linked seller's name.
type Sale struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TenantID        *uint     `gorm:"index" json:"tenant_id,omitempty"`
	VehicleID       uint      `gorm:"index;not null" json:"vehicle_id"`
	BuyerID         uint      `gorm:"index;not null" json:"buyer_id"`
	SellerID        *uint     `gorm:"index" json:"seller_id,omitempty"`
	SaleDate        time.Time `gorm:"type:date;not null" json:"sale_date"`
	SalePrice       float64   `gorm:"type:decimal(12,2);not null" json:"sale_price"`
	Discount        float64   `gorm:"type:decimal(12,2);default:0" json:"discount"`
	FinalAmount     float64   `gorm:"type:decimal(12,2);not null" json:"final_amount"`
	PaymentMethodID uint      `gorm:"index;not null" json:"payment_method_id"`
	InvoiceNumber   string    `gorm:"size:100;not null" json:"invoice_number"`
	Commission      float64   `gorm:"type:decimal(12,2);default:0" json:"commission"`
	SalespersonName string    `gorm:"size:150" json:"salesperson_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Vehicle       *Vehicle       `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Buyer         *Buyer         `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Seller        *Seller        `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
	Tenant        *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
