package repository

import (
	"context"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
)

// TransferFilterParams extends the shared transaction filters with the
// transfer-specific ones.
type TransferFilterParams struct {
	TransactionFilterParams
	FromDealerID *uint
	ToDealerID   *uint
	Status       *enum.TransferStatus
}

// TransferRepository defines storage operations for inter-branch transfers
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	GetByID(ctx context.Context, id uint) (*entity.Transfer, error)
	GetWithRelations(ctx context.Context, id uint) (*entity.Transfer, error)
	Update(ctx context.Context, transfer *entity.Transfer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *TransferFilterParams) ([]entity.Transfer, error)
}
