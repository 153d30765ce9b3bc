package repository

import (
	"context"
	"errors"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	domainRepo "github.com/autolanka/vsms-api/internal/domain/repository"
	"gorm.io/gorm"
)

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *gorm.DB) domainRepo.SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) GetByID(ctx context.Context, id uint) (*entity.Seller, error) {
	var seller entity.Seller
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&seller, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) GetByName(ctx context.Context, name string) (*entity.Seller, error) {
	var seller entity.Seller
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&seller, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

// Upsert matches on (tenant_id, phone). An existing row has its contact
// fields overwritten with the submitted values, so the latest purchase wins.
func (r *sellerRepository) Upsert(ctx context.Context, seller *entity.Seller) (*entity.Seller, error) {
	db := conn(ctx, r.db)

	var existing entity.Seller
	err := db.Scopes(TenantScope(ctx)).
		First(&existing, "phone = ?", seller.Phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(seller).Error; err != nil {
			return nil, err
		}
		return seller, nil
	}
	if err != nil {
		return nil, err
	}

	existing.Name = seller.Name
	existing.NICOrReg = seller.NICOrReg
	existing.Address = seller.Address
	existing.Email = seller.Email
	existing.SellerType = seller.SellerType
	if err := db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository creates a new buyer repository
func NewBuyerRepository(db *gorm.DB) domainRepo.BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	return conn(ctx, r.db).Create(buyer).Error
}

func (r *buyerRepository) GetByID(ctx context.Context, id uint) (*entity.Buyer, error) {
	var buyer entity.Buyer
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&buyer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &buyer, err
}
