package repository

import (
	"context"

	"github.com/autolanka/vsms-api/internal/domain/entity"
)

// SellerRepository defines storage operations for sellers
type SellerRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Seller, error)
	GetByName(ctx context.Context, name string) (*entity.Seller, error)
	// Upsert inserts or updates keyed on (tenant_id, phone): if the phone
	// already exists for the tenant, name/address/email/type are overwritten
	// with the submitted values. The stored row is returned either way.
	Upsert(ctx context.Context, seller *entity.Seller) (*entity.Seller, error)
}

// BuyerRepository defines storage operations for buyers
type BuyerRepository interface {
	Create(ctx context.Context, buyer *entity.Buyer) error
	GetByID(ctx context.Context, id uint) (*entity.Buyer, error)
}
