package repository

import (
	"context"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
)

// TransactionFilterParams carries the filters shared by the purchase, sale
// and transfer listings: tenant scoping comes from the context, the rest
// from query parameters.
type TransactionFilterParams struct {
	VehicleID *uint
	StartDate *time.Time
	EndDate   *time.Time
}

// PurchaseRepository defines storage operations for car purchases
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.CarPurchase) error
	GetByID(ctx context.Context, id uint) (*entity.CarPurchase, error)
	GetWithRelations(ctx context.Context, id uint) (*entity.CarPurchase, error)
	Update(ctx context.Context, purchase *entity.CarPurchase) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.CarPurchase, error)

	// ReplaceSellers swaps the purchase's seller links for the given ids.
	ReplaceSellers(ctx context.Context, purchase *entity.CarPurchase, sellerIDs []uint) error
	// DetachSellers removes all seller links prior to deleting the purchase.
	DetachSellers(ctx context.Context, purchase *entity.CarPurchase) error
}
