package repository

import (
	"context"

	"github.com/autolanka/vsms-api/internal/domain/entity"
)

// DealerRepository defines storage operations for branches
type DealerRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Dealer, error)
	ListActive(ctx context.Context) ([]entity.Dealer, error)
	// ListAll includes inactive branches so a vehicle's current branch can
	// still be displayed after it is deactivated.
	ListAll(ctx context.Context) ([]entity.Dealer, error)
}
