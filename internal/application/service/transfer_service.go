package service

import (
	"context"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/internal/domain/lifecycle"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	infraRepo "github.com/autolanka/vsms-api/internal/infrastructure/repository"
	"github.com/autolanka/vsms-api/pkg/apperror"
)

// TransferService orchestrates inter-branch vehicle transfers
type TransferService struct {
	transferRepo repository.TransferRepository
	vehicleRepo  repository.VehicleRepository
	dealerRepo   repository.DealerRepository
	txManager    repository.TxManager
}

// NewTransferService creates a new transfer service
func NewTransferService(
	transferRepo repository.TransferRepository,
	vehicleRepo repository.VehicleRepository,
	dealerRepo repository.DealerRepository,
	txManager repository.TxManager,
) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		vehicleRepo:  vehicleRepo,
		dealerRepo:   dealerRepo,
		txManager:    txManager,
	}
}

// CreateTransferInput represents the transfer booking input
type CreateTransferInput struct {
	VehicleID         uint
	FromDealerID      *uint
	ToDealerID        *uint
	TransferDate      time.Time
	TransferPrice     float64
	TransportCost     float64
	Status            enum.TransferStatus
	ResponsiblePerson *string
}

// UpdateTransferInput represents the transfer edit input
type UpdateTransferInput struct {
	FromDealerID      *uint
	ToDealerID        *uint
	TransferDate      *time.Time
	TransferPrice     *float64
	TransportCost     *float64
	Status            *enum.TransferStatus
	ResponsiblePerson *string
}

func (s *TransferService) validateCreate(ctx context.Context, input *CreateTransferInput) (*entity.Vehicle, error) {
	var v apperror.Violations
	v.AddIf(input.VehicleID == 0, "vehicle_id", "vehicle is required")
	v.AddIf(input.TransferDate.IsZero(), "transfer_date", "transfer date is required")
	v.AddIf(input.TransferPrice < 0, "transfer_price", "transfer price must be non-negative")
	v.AddIf(input.TransportCost < 0, "transport_cost", "transport cost must be non-negative")
	v.AddIf(input.Status != "" && !input.Status.Valid(), "status", "status must be pending or completed")
	v.AddIf(input.ToDealerID == nil, "to_dealer_id", "destination dealer is required")
	v.AddIf(input.FromDealerID != nil && input.ToDealerID != nil && *input.FromDealerID == *input.ToDealerID,
		"to_dealer_id", "destination must differ from origin")

	var vehicle *entity.Vehicle
	if input.VehicleID != 0 {
		var err error
		vehicle, err = s.vehicleRepo.GetByID(ctx, input.VehicleID)
		if err != nil {
			return nil, err
		}
		v.AddIf(vehicle == nil, "vehicle_id", "vehicle does not exist")
	}

	if input.FromDealerID != nil {
		dealer, err := s.dealerRepo.GetByID(ctx, *input.FromDealerID)
		if err != nil {
			return nil, err
		}
		v.AddIf(dealer == nil, "from_dealer_id", "origin dealer does not exist")
	}
	if input.ToDealerID != nil {
		dealer, err := s.dealerRepo.GetByID(ctx, *input.ToDealerID)
		if err != nil {
			return nil, err
		}
		v.AddIf(dealer == nil, "to_dealer_id", "destination dealer does not exist")
	}

	return vehicle, v.Err()
}

// CreateTransfer books a transfer. A transfer created already completed
// applies its vehicle side effects immediately in the same transaction.
func (s *TransferService) CreateTransfer(ctx context.Context, input *CreateTransferInput) (*entity.Transfer, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	vehicle, err := s.validateCreate(ctx, input)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = enum.TransferStatusPending
	}

	transfer := &entity.Transfer{
		TenantID:          &tenantID,
		VehicleID:         input.VehicleID,
		FromDealerID:      input.FromDealerID,
		ToDealerID:        input.ToDealerID,
		TransferDate:      input.TransferDate,
		TransferPrice:     input.TransferPrice,
		TransportCost:     input.TransportCost,
		Status:            status,
		ResponsiblePerson: input.ResponsiblePerson,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.transferRepo.Create(ctx, transfer); err != nil {
			return err
		}
		if transfer.Status == enum.TransferStatusCompleted {
			return s.applyCompletion(ctx, vehicle, transfer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.transferRepo.GetWithRelations(ctx, transfer.ID)
}

// applyCompletion applies the vehicle side effects of a completed transfer:
// the dealer reassignment happens unconditionally, the Available ->
// Transferred status change only when the precondition holds.
func (s *TransferService) applyCompletion(ctx context.Context, vehicle *entity.Vehicle, transfer *entity.Transfer) error {
	if transfer.ToDealerID == nil {
		return nil
	}
	effect := lifecycle.CompleteTransfer(vehicle.Status, *transfer.ToDealerID)

	fields := map[string]interface{}{"dealer_id": effect.NewDealerID}
	if effect.StatusChanged {
		fields["status"] = effect.NewStatus
	}
	return s.vehicleRepo.UpdateFields(ctx, vehicle.ID, fields)
}

// UpdateTransfer edits a transfer. The vehicle side effects fire exactly
// once, on the pending -> completed edge; re-saving a completed transfer
// does not refire them.
func (s *TransferService) UpdateTransfer(ctx context.Context, id uint, input *UpdateTransferInput) (*entity.Transfer, error) {
	transfer, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, apperror.NewNotFoundError("Transfer")
	}

	var v apperror.Violations
	v.AddIf(input.TransferPrice != nil && *input.TransferPrice < 0, "transfer_price", "transfer price must be non-negative")
	v.AddIf(input.TransportCost != nil && *input.TransportCost < 0, "transport_cost", "transport cost must be non-negative")
	v.AddIf(input.Status != nil && !input.Status.Valid(), "status", "status must be pending or completed")

	if input.FromDealerID != nil {
		dealer, err := s.dealerRepo.GetByID(ctx, *input.FromDealerID)
		if err != nil {
			return nil, err
		}
		v.AddIf(dealer == nil, "from_dealer_id", "origin dealer does not exist")
	}
	if input.ToDealerID != nil {
		dealer, err := s.dealerRepo.GetByID(ctx, *input.ToDealerID)
		if err != nil {
			return nil, err
		}
		v.AddIf(dealer == nil, "to_dealer_id", "destination dealer does not exist")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	statusBefore := transfer.Status

	if input.FromDealerID != nil {
		transfer.FromDealerID = input.FromDealerID
	}
	if input.ToDealerID != nil {
		transfer.ToDealerID = input.ToDealerID
	}
	if input.TransferDate != nil {
		transfer.TransferDate = *input.TransferDate
	}
	if input.TransferPrice != nil {
		transfer.TransferPrice = *input.TransferPrice
	}
	if input.TransportCost != nil {
		transfer.TransportCost = *input.TransportCost
	}
	if input.Status != nil {
		transfer.Status = *input.Status
	}
	if input.ResponsiblePerson != nil {
		transfer.ResponsiblePerson = input.ResponsiblePerson
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.transferRepo.Update(ctx, transfer); err != nil {
			return err
		}
		if lifecycle.CrossesCompletion(statusBefore, transfer.Status) {
			vehicle, err := s.vehicleRepo.GetByID(ctx, transfer.VehicleID)
			if err != nil {
				return err
			}
			if vehicle == nil {
				return apperror.NewNotFoundError("Vehicle")
			}
			return s.applyCompletion(ctx, vehicle, transfer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.transferRepo.GetWithRelations(ctx, transfer.ID)
}

// DeleteTransfer removes a transfer record. Vehicle assignment and status
// are left as they are; undoing a completed transfer is an explicit
// inventory edit.
func (s *TransferService) DeleteTransfer(ctx context.Context, id uint) error {
	transfer, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if transfer == nil {
		return apperror.NewNotFoundError("Transfer")
	}
	return s.transferRepo.Delete(ctx, id)
}

// GetTransfer returns a transfer with its vehicle and both branches
func (s *TransferService) GetTransfer(ctx context.Context, id uint) (*entity.Transfer, error) {
	transfer, err := s.transferRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, apperror.NewNotFoundError("Transfer")
	}
	return transfer, nil
}

// ListTransfers returns the transfer ledger, newest first
func (s *TransferService) ListTransfers(ctx context.Context, params *repository.TransferFilterParams) ([]entity.Transfer, error) {
	return s.transferRepo.List(ctx, params)
}
