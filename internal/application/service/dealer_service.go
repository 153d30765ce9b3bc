package service

import (
	"context"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	"github.com/autolanka/vsms-api/pkg/apperror"
)

// DealerService handles branch lookups
type DealerService struct {
	dealerRepo repository.DealerRepository
}

// NewDealerService creates a new dealer service
func NewDealerService(dealerRepo repository.DealerRepository) *DealerService {
	return &DealerService{dealerRepo: dealerRepo}
}

// GetDealer returns a single branch
func (s *DealerService) GetDealer(ctx context.Context, id uint) (*entity.Dealer, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, apperror.NewNotFoundError("Dealer")
	}
	return dealer, nil
}

// ListActiveDealers returns the branches selectable on forms
func (s *DealerService) ListActiveDealers(ctx context.Context) ([]entity.Dealer, error) {
	return s.dealerRepo.ListActive(ctx)
}

// ListAllDealers includes inactive branches, for historical display
func (s *DealerService) ListAllDealers(ctx context.Context) ([]entity.Dealer, error) {
	return s.dealerRepo.ListAll(ctx)
}
