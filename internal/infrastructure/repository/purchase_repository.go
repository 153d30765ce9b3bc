package repository

import (
	"context"
	"errors"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	domainRepo "github.com/autolanka/vsms-api/internal/domain/repository"
	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.CarPurchase) error {
	return conn(ctx, r.db).Omit("Sellers").Create(purchase).Error
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uint) (*entity.CarPurchase, error) {
	var purchase entity.CarPurchase
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) GetWithRelations(ctx context.Context, id uint) (*entity.CarPurchase, error) {
	var purchase entity.CarPurchase
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Preload("Vehicle").Preload("Vehicle.Dealer").
		Preload("PaymentMethod").Preload("Sellers").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.CarPurchase) error {
	return conn(ctx, r.db).Omit("Sellers").Save(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Delete(&entity.CarPurchase{}, "id = ?", id).Error
}

func (r *purchaseRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.CarPurchase, error) {
	var purchases []entity.CarPurchase

	query := conn(ctx, r.db).Model(&entity.CarPurchase{}).Scopes(TenantScope(ctx))

	if params.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *params.VehicleID)
	}
	if params.StartDate != nil {
		query = query.Where("purchase_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("purchase_date <= ?", *params.EndDate)
	}

	err := query.
		Preload("Vehicle").Preload("PaymentMethod").Preload("Sellers").
		Order("purchase_date DESC, id DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) ReplaceSellers(ctx context.Context, purchase *entity.CarPurchase, sellerIDs []uint) error {
	sellers := make([]entity.Seller, len(sellerIDs))
	for i, id := range sellerIDs {
		sellers[i] = entity.Seller{ID: id}
	}
	return conn(ctx, r.db).Model(purchase).Association("Sellers").Replace(sellers)
}

func (r *purchaseRepository) DetachSellers(ctx context.Context, purchase *entity.CarPurchase) error {
	return conn(ctx, r.db).Model(purchase).Association("Sellers").Clear()
}
