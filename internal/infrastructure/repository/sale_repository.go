package repository

import (
	"context"
	"errors"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	domainRepo "github.com/autolanka/vsms-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return conn(ctx, r.db).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var sale entity.Sale
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithRelations(ctx context.Context, id uint) (*entity.Sale, error) {
	var sale entity.Sale
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Preload("Vehicle").Preload("Vehicle.Dealer").
		Preload("Buyer").Preload("Seller").Preload("PaymentMethod").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := conn(ctx, r.db).Model(&entity.Sale{}).Scopes(TenantScope(ctx))

	if params.VehicleID != nil {
		query = query.Where("sales.vehicle_id = ?", *params.VehicleID)
	}
	if params.StartDate != nil {
		query = query.Where("sales.sale_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("sales.sale_date <= ?", *params.EndDate)
	}
	if params.PaymentMethodID != nil {
		query = query.Where("sales.payment_method_id = ?", *params.PaymentMethodID)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.
			Joins("JOIN vehicles ON vehicles.id = sales.vehicle_id").
			Where("vehicles.stock_number ILIKE ? OR vehicles.make ILIKE ? OR vehicles.model ILIKE ? OR sales.invoice_number ILIKE ?",
				pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Pagination != nil {
		query = query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage)
	}

	err := query.
		Preload("Vehicle").Preload("Buyer").Preload("Seller").Preload("PaymentMethod").
		Order("sales.sale_date DESC, sales.id DESC").
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepository) Statistics(ctx context.Context, params *domainRepo.TransactionFilterParams) (*domainRepo.SaleStatistics, error) {
	var stats domainRepo.SaleStatistics

	query := conn(ctx, r.db).Model(&entity.Sale{}).Scopes(TenantScope(ctx))

	if params.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *params.VehicleID)
	}
	if params.StartDate != nil {
		query = query.Where("sale_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("sale_date <= ?", *params.EndDate)
	}

	err := query.
		Select("COUNT(*) AS total_sales, COALESCE(SUM(final_amount), 0) AS total_revenue, COALESCE(SUM(discount), 0) AS total_discount, COALESCE(SUM(commission), 0) AS total_commission").
		Scan(&stats).Error
	return &stats, err
}
