package entity

import (
	"time"
)

// CarPurchase records the dealership acquiring a vehicle from a seller.
// Sellers attach through a join table; the application only ever links one
// seller per purchase but the schema allows several.
type CarPurchase struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TenantID        *uint     `gorm:"index" json:"tenant_id,omitempty"`
	VehicleID       uint      `gorm:"index;not null" json:"vehicle_id"`
	PurchaseDate    time.Time `gorm:"type:date;not null" json:"purchase_date"`
	PurchasePrice   float64   `gorm:"type:decimal(15,2);not null" json:"purchase_price"`
	PaymentMethodID uint      `gorm:"index;not null" json:"payment_method_id"`
	InvoiceNumber   string    `gorm:"size:100;not null" json:"invoice_number"`
	TaxAmount       float64   `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Branch          *string   `gorm:"size:150" json:"branch,omitempty"`
	DocumentPath    *string   `gorm:"size:500" json:"document_path,omitempty"`
	TaxDetails      *string   `gorm:"type:text" json:"tax_details,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Vehicle       *Vehicle       `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
	Sellers       []Seller       `gorm:"many2many:purchase_sellers" json:"sellers,omitempty"`
	Tenant        *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

// TableName returns the table name for the CarPurchase model
func (CarPurchase) TableName() string {
	return "car_purchases"
}
