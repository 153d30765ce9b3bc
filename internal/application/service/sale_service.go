package service

import (
	"context"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/lifecycle"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	infraRepo "github.com/autolanka/vsms-api/internal/infrastructure/repository"
	"github.com/autolanka/vsms-api/pkg/apperror"
)

// SaleService orchestrates the vehicle sale workflow
type SaleService struct {
	saleRepo          repository.SaleRepository
	vehicleRepo       repository.VehicleRepository
	buyerRepo         repository.BuyerRepository
	sellerRepo        repository.SellerRepository
	paymentMethodRepo repository.PaymentMethodRepository
	txManager         repository.TxManager
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	vehicleRepo repository.VehicleRepository,
	buyerRepo repository.BuyerRepository,
	sellerRepo repository.SellerRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
	txManager repository.TxManager,
) *SaleService {
	return &SaleService{
		saleRepo:          saleRepo,
		vehicleRepo:       vehicleRepo,
		buyerRepo:         buyerRepo,
		sellerRepo:        sellerRepo,
		paymentMethodRepo: paymentMethodRepo,
		txManager:         txManager,
	}
}

// BuyerInput carries the buyer details submitted with a sale. Every sale
// inserts a fresh buyer row.
type BuyerInput struct {
	Name     string
	NICOrReg string
	Address  string
	Phone    string
	Email    string
}

// CreateSaleInput represents the sale booking input. SellerID optionally
// links the salesperson who handled the deal.
type CreateSaleInput struct {
	VehicleID       uint
	SaleDate        time.Time
	SalePrice       float64
	Discount        float64
	PaymentMethodID uint
	InvoiceNumber   string
	Commission      float64
	SellerID        *uint
	Buyer           BuyerInput
}

func (s *SaleService) validateCreate(ctx context.Context, input *CreateSaleInput) (*entity.Vehicle, *entity.Seller, error) {
	var v apperror.Violations
	v.AddIf(input.VehicleID == 0, "vehicle_id", "vehicle is required")
	v.AddIf(input.SaleDate.IsZero(), "sale_date", "sale date is required")
	v.AddIf(input.SalePrice < 0, "sale_price", "sale price must be non-negative")
	v.AddIf(input.Discount < 0, "discount", "discount must be non-negative")
	v.AddIf(input.Discount > input.SalePrice, "discount", "discount cannot exceed sale price")
	v.AddIf(input.Commission < 0, "commission", "commission must be non-negative")
	v.AddIf(input.InvoiceNumber == "", "invoice_number", "invoice number is required")
	v.AddIf(input.Buyer.Name == "", "buyer.name", "buyer name is required")
	v.AddIf(input.Buyer.Phone == "", "buyer.phone", "buyer phone is required")

	var vehicle *entity.Vehicle
	if input.VehicleID != 0 {
		var err error
		vehicle, err = s.vehicleRepo.GetByID(ctx, input.VehicleID)
		if err != nil {
			return nil, nil, err
		}
		v.AddIf(vehicle == nil, "vehicle_id", "vehicle does not exist")
	}

	if input.PaymentMethodID != 0 {
		method, err := s.paymentMethodRepo.GetByID(ctx, input.PaymentMethodID)
		if err != nil {
			return nil, nil, err
		}
		v.AddIf(method == nil, "payment_method_id", "payment method does not exist")
	} else {
		v.Add("payment_method_id", "payment method is required")
	}

	var seller *entity.Seller
	if input.SellerID != nil {
		var err error
		seller, err = s.sellerRepo.GetByID(ctx, *input.SellerID)
		if err != nil {
			return nil, nil, err
		}
		v.AddIf(seller == nil, "seller_id", "seller does not exist")
	}

	return vehicle, seller, v.Err()
}

// CreateSale books a sale: a fresh buyer row is inserted, the sale ledger
// row written and an Available vehicle moves to Sold, all in one
// transaction.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	vehicle, seller, err := s.validateCreate(ctx, input)
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		TenantID:        &tenantID,
		VehicleID:       input.VehicleID,
		SellerID:        input.SellerID,
		SaleDate:        input.SaleDate,
		SalePrice:       input.SalePrice,
		Discount:        input.Discount,
		FinalAmount:     input.SalePrice - input.Discount,
		PaymentMethodID: input.PaymentMethodID,
		InvoiceNumber:   input.InvoiceNumber,
		Commission:      input.Commission,
	}
	if seller != nil {
		sale.SalespersonName = seller.Name
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		buyer := &entity.Buyer{
			TenantID: &tenantID,
			Name:     input.Buyer.Name,
			NICOrReg: input.Buyer.NICOrReg,
			Address:  input.Buyer.Address,
			Phone:    input.Buyer.Phone,
			Email:    input.Buyer.Email,
		}
		if err := s.buyerRepo.Create(ctx, buyer); err != nil {
			return err
		}

		sale.BuyerID = buyer.ID
		if err := s.saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		if next, changed := lifecycle.Next(vehicle.Status, lifecycle.EventSaleCreated); changed {
			return s.vehicleRepo.UpdateFields(ctx, vehicle.ID, map[string]interface{}{"status": next})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.saleRepo.GetWithRelations(ctx, sale.ID)
}

// GetSale returns a sale with its vehicle, buyer, seller and payment method
func (s *SaleService) GetSale(ctx context.Context, id uint) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns one page of the sales ledger, newest first, with the
// unpaginated total alongside
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return s.saleRepo.List(ctx, params)
}

// Statistics aggregates the sales ledger for the dashboard
func (s *SaleService) Statistics(ctx context.Context, params *repository.TransactionFilterParams) (*repository.SaleStatistics, error) {
	return s.saleRepo.Statistics(ctx, params)
}
