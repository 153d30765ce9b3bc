package repository

import (
	"context"
	"errors"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	domainRepo "github.com/autolanka/vsms-api/internal/domain/repository"
	"gorm.io/gorm"
)

type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository creates a new dealer repository
func NewDealerRepository(db *gorm.DB) domainRepo.DealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) GetByID(ctx context.Context, id uint) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&dealer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) ListActive(ctx context.Context) ([]entity.Dealer, error) {
	var dealers []entity.Dealer
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Where("status = ?", enum.AccountStatusActive).
		Order("name ASC").
		Find(&dealers).Error
	return dealers, err
}

func (r *dealerRepository) ListAll(ctx context.Context) ([]entity.Dealer, error) {
	var dealers []entity.Dealer
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Order("name ASC").
		Find(&dealers).Error
	return dealers, err
}
