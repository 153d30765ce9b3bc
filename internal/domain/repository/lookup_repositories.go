package repository

import (
	"context"

	"github.com/autolanka/vsms-api/internal/domain/entity"
)

// PaymentMethodRepository defines storage operations for the payment method
// lookup table
type PaymentMethodRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.PaymentMethod, error)
	ListAll(ctx context.Context) ([]entity.PaymentMethod, error)
}

// TenantRepository defines storage operations for tenants
type TenantRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Tenant, error)
	// First returns the lowest-id tenant, used only by the dev-mode
	// default-tenant fallback.
	First(ctx context.Context) (*entity.Tenant, error)
}

// UserRepository defines storage operations for staff accounts
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uint) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
