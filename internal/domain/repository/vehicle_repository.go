package repository

import (
	"context"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/pkg/pagination"
)

// VehicleFilterParams holds the filters accepted by the admin vehicle listing.
// A nil Status means the default Available-only view; AllStatuses disables
// status filtering entirely (status=all).
type VehicleFilterParams struct {
	Pagination  *pagination.PaginationParams
	Status      *enum.VehicleStatus
	AllStatuses bool
	DealerID    *uint
}

// LandingFilterParams holds the public landing page filters. Only Available
// vehicles are ever returned.
type LandingFilterParams struct {
	Pagination       *pagination.PaginationParams
	Make             *string
	FuelType         *enum.FuelType
	TransmissionType *enum.TransmissionType
	MinPrice         *float64
	MaxPrice         *float64
}

// VehicleSearchRow is the flattened autocomplete row including the owning
// dealer's name via a left join (the dealer may be absent or inactive).
type VehicleSearchRow struct {
	ID          uint               `json:"id"`
	StockNumber string             `json:"stock_number"`
	Make        string             `json:"make"`
	Model       string             `json:"model"`
	Year        int                `json:"year"`
	Price       float64            `json:"price"`
	Status      enum.VehicleStatus `json:"status"`
	DealerID    *uint              `json:"dealer_id"`
	DealerName  *string            `json:"dealer_name"`
}

// VehicleRepository defines storage operations for vehicles and their detail
// records
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id uint) (*entity.Vehicle, error)
	GetWithRelations(ctx context.Context, id uint) (*entity.Vehicle, error)
	// GetPublicByID serves the storefront detail page. Visitors carry no
	// tenant, so the lookup is not tenant scoped.
	GetPublicByID(ctx context.Context, id uint) (*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *VehicleFilterParams) ([]entity.Vehicle, int64, error)
	ListForLanding(ctx context.Context, params *LandingFilterParams) ([]entity.Vehicle, int64, error)
	Search(ctx context.Context, term string, limit int) ([]VehicleSearchRow, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	StockNumberExists(ctx context.Context, stockNumber string) (bool, error)

	ReplaceRegistration(ctx context.Context, vehicleID uint, reg *entity.VehicleRegistration) error
	ReplaceImport(ctx context.Context, vehicleID uint, imp *entity.VehicleImport) error
	AddImage(ctx context.Context, image *entity.VehicleImage) error
}
