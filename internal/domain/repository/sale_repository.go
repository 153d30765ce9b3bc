package repository

import (
	"context"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/pkg/pagination"
)

// SaleFilterParams extends the shared transaction filters with the
// sale-specific ones.
type SaleFilterParams struct {
	TransactionFilterParams
	PaymentMethodID *uint
	// Search is matched case-insensitively against the joined vehicle's
	// stock number, make and model.
	Search     string
	Pagination *pagination.PaginationParams
}

// SaleStatistics aggregates the sales ledger for the dashboard.
type SaleStatistics struct {
	TotalSales      int64   `json:"totalSales"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalDiscount   float64 `json:"totalDiscount"`
	TotalCommission float64 `json:"totalCommission"`
}

// SaleRepository defines storage operations for sales
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uint) (*entity.Sale, error)
	GetWithRelations(ctx context.Context, id uint) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	Statistics(ctx context.Context, params *TransactionFilterParams) (*SaleStatistics, error)
}
