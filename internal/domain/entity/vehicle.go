package entity

import (
	"time"

	"github.com/autolanka/vsms-api/internal/domain/enum"
)

// Vehicle is the central inventory record. Descriptive attributes are fixed
// at registration time; status and dealer_id are mutated only by the
// purchase/sale/transfer orchestrators or an explicit admin edit.
type Vehicle struct {
	ID               uint                  `gorm:"primaryKey" json:"id"`
	TenantID         *uint                 `gorm:"index" json:"tenant_id,omitempty"`
	VehicleCode      string                `gorm:"size:50;uniqueIndex;not null" json:"vehicle_code"`
	StockNumber      string                `gorm:"size:50;uniqueIndex;not null" json:"stock_number"`
	Make             string                `gorm:"size:100;not null" json:"make"`
	Model            string                `gorm:"size:100;not null" json:"model"`
	SubModel         *string               `gorm:"size:100" json:"sub_model,omitempty"`
	VehicleType      enum.VehicleType      `gorm:"size:20;not null" json:"vehicle_type"`
	Year             int                   `gorm:"not null" json:"year"`
	Color            string                `gorm:"size:50;not null" json:"color"`
	CountryOfOrigin  string                `gorm:"size:100;not null" json:"country_of_origin"`
	FuelType         enum.FuelType         `gorm:"size:20;not null" json:"fuel_type"`
	Mileage          int                   `gorm:"not null" json:"mileage"`
	TransmissionType enum.TransmissionType `gorm:"size:20;not null" json:"transmission_type"`
	EngineSize       *string               `gorm:"size:50" json:"engine_size,omitempty"`
	VIN              *string               `gorm:"size:100;column:vin" json:"vin,omitempty"`
	RegistrationType enum.RegistrationType `gorm:"size:20;not null" json:"registration_type"`
	Price            float64               `gorm:"type:decimal(12,2);not null" json:"price"`
	DealerID         *uint                 `gorm:"index" json:"dealer_id,omitempty"`
	Status           enum.VehicleStatus    `gorm:"size:20;default:Available" json:"status"`
	Description      *string               `gorm:"type:text" json:"description,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`

	// Exactly one of Registration/Import exists, decided by RegistrationType.
	Registration *VehicleRegistration `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"registration,omitempty"`
	Import       *VehicleImport       `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"import,omitempty"`
	Images       []VehicleImage       `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Dealer       *Dealer              `gorm:"foreignKey:DealerID;constraint:OnDelete:SET NULL" json:"dealer,omitempty"`
	Tenant       *Tenant              `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName returns the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleRegistration holds the detail record for locally registered vehicles
type VehicleRegistration struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	VehicleID              uint       `gorm:"uniqueIndex;not null" json:"vehicle_id"`
	RegistrationNumber     *string    `gorm:"size:100" json:"registration_number,omitempty"`
	NumberPlate            *string    `gorm:"size:50" json:"number_plate,omitempty"`
	RegistrationDate       *time.Time `gorm:"type:date" json:"registration_date,omitempty"`
	NumberOfPreviousOwners int        `gorm:"default:0" json:"number_of_previous_owners"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// TableName returns the table name for the VehicleRegistration model
func (VehicleRegistration) TableName() string {
	return "vehicle_registrations"
}

// VehicleImport holds the detail record for unregistered (imported) vehicles
type VehicleImport struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	VehicleID     uint      `gorm:"uniqueIndex;not null" json:"vehicle_id"`
	ChassisNumber *string   `gorm:"size:100" json:"chassis_number,omitempty"`
	EngineNumber  *string   `gorm:"size:100" json:"engine_number,omitempty"`
	ImportYear    *int      `json:"import_year,omitempty"`
	AuctionGrade  *string   `gorm:"size:20" json:"auction_grade,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the VehicleImport model
func (VehicleImport) TableName() string {
	return "vehicle_imports"
}

// VehicleImage is one photo of a vehicle. ImageURL stores a /storage/
// relative path rewritten to an absolute URL at projection time.
type VehicleImage struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	VehicleID     uint               `gorm:"index;not null" json:"vehicle_id"`
	ImageCategory enum.ImageCategory `gorm:"size:30;not null" json:"image_category"`
	ImageURL      string             `gorm:"size:500;not null" json:"image_url"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// TableName returns the table name for the VehicleImage model
func (VehicleImage) TableName() string {
	return "vehicle_images"
}
