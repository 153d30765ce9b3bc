package repository

import (
	"context"
	"errors"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	domainRepo "github.com/autolanka/vsms-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) domainRepo.TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	return conn(ctx, r.db).Create(transfer).Error
}

func (r *transferRepository) GetByID(ctx context.Context, id uint) (*entity.Transfer, error) {
	var transfer entity.Transfer
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&transfer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transfer, err
}

func (r *transferRepository) GetWithRelations(ctx context.Context, id uint) (*entity.Transfer, error) {
	var transfer entity.Transfer
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Preload("Vehicle").Preload("FromDealer").Preload("ToDealer").
		First(&transfer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transfer, err
}

func (r *transferRepository) Update(ctx context.Context, transfer *entity.Transfer) error {
	return conn(ctx, r.db).Save(transfer).Error
}

func (r *transferRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Delete(&entity.Transfer{}, "id = ?", id).Error
}

func (r *transferRepository) List(ctx context.Context, params *domainRepo.TransferFilterParams) ([]entity.Transfer, error) {
	var transfers []entity.Transfer

	query := conn(ctx, r.db).Model(&entity.Transfer{}).Scopes(TenantScope(ctx))

	if params.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *params.VehicleID)
	}
	if params.StartDate != nil {
		query = query.Where("transfer_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("transfer_date <= ?", *params.EndDate)
	}
	if params.FromDealerID != nil {
		query = query.Where("from_dealer_id = ?", *params.FromDealerID)
	}
	if params.ToDealerID != nil {
		query = query.Where("to_dealer_id = ?", *params.ToDealerID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	err := query.
		Preload("Vehicle").Preload("FromDealer").Preload("ToDealer").
		Order("transfer_date DESC, id DESC").
		Find(&transfers).Error
	return transfers, err
}
