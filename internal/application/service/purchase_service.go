package service

import (
	"context"
	"log"
	"mime/multipart"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/internal/domain/lifecycle"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	infraRepo "github.com/autolanka/vsms-api/internal/infrastructure/repository"
	"github.com/autolanka/vsms-api/internal/infrastructure/storage"
	"github.com/autolanka/vsms-api/pkg/apperror"
)

const paymentDocsDir = "payment_docs"

// PurchaseService orchestrates the vehicle acquisition workflow
type PurchaseService struct {
	purchaseRepo      repository.PurchaseRepository
	vehicleRepo       repository.VehicleRepository
	sellerRepo        repository.SellerRepository
	paymentMethodRepo repository.PaymentMethodRepository
	dealerRepo        repository.DealerRepository
	txManager         repository.TxManager
	store             storage.Store
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	vehicleRepo repository.VehicleRepository,
	sellerRepo repository.SellerRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
	dealerRepo repository.DealerRepository,
	txManager repository.TxManager,
	store storage.Store,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:      purchaseRepo,
		vehicleRepo:       vehicleRepo,
		sellerRepo:        sellerRepo,
		paymentMethodRepo: paymentMethodRepo,
		dealerRepo:        dealerRepo,
		txManager:         txManager,
		store:             store,
	}
}

// SellerInput carries the seller contact details submitted with a purchase
type SellerInput struct {
	Name       string
	NICOrReg   *string
	Address    string
	Phone      string
	Email      *string
	SellerType enum.SellerType
}

// CreatePurchaseInput represents the purchase intake input
type CreatePurchaseInput struct {
	VehicleID       uint
	PurchaseDate    time.Time
	PurchasePrice   float64
	PaymentMethodID uint
	InvoiceNumber   string
	TaxAmount       float64
	TaxDetails      *string
	Branch          *string
	Seller          SellerInput
	Document        *multipart.FileHeader
}

// UpdatePurchaseInput represents the purchase edit input. The linked vehicle
// is never retouched by an edit; only the ledger row and its attachments
// change.
type UpdatePurchaseInput struct {
	PurchaseDate    *time.Time
	PurchasePrice   *float64
	PaymentMethodID *uint
	InvoiceNumber   *string
	TaxAmount       *float64
	TaxDetails      *string
	Branch          *string
	Seller          *SellerInput
	Document        *multipart.FileHeader
}

// validateCreate collects every violation before reporting, so the client
// sees all problems with the form at once.
func (s *PurchaseService) validateCreate(ctx context.Context, input *CreatePurchaseInput) (*entity.Vehicle, error) {
	var v apperror.Violations
	v.AddIf(input.VehicleID == 0, "vehicle_id", "vehicle is required")
	v.AddIf(input.PurchaseDate.IsZero(), "purchase_date", "purchase date is required")
	v.AddIf(input.PurchasePrice < 0, "purchase_price", "purchase price must be non-negative")
	v.AddIf(input.TaxAmount < 0, "tax_amount", "tax amount must be non-negative")
	v.AddIf(input.InvoiceNumber == "", "invoice_number", "invoice number is required")
	v.AddIf(input.Seller.Name == "", "seller.name", "seller name is required")
	v.AddIf(input.Seller.Phone == "", "seller.phone", "seller phone is required")
	v.AddIf(input.Seller.SellerType != "" && !input.Seller.SellerType.Valid(), "seller.seller_type", "invalid seller type")

	var vehicle *entity.Vehicle
	if input.VehicleID != 0 {
		var err error
		vehicle, err = s.vehicleRepo.GetByID(ctx, input.VehicleID)
		if err != nil {
			return nil, err
		}
		v.AddIf(vehicle == nil, "vehicle_id", "vehicle does not exist")
	}

	if input.PaymentMethodID != 0 {
		method, err := s.paymentMethodRepo.GetByID(ctx, input.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		v.AddIf(method == nil, "payment_method_id", "payment method does not exist")
	} else {
		v.Add("payment_method_id", "payment method is required")
	}

	return vehicle, v.Err()
}

// CreatePurchase books a vehicle acquisition: the seller is upserted by
// phone, the ledger row is written, and an Available vehicle moves to Sold.
// All of that happens in one transaction. The document upload is deliberately
// outside it: a failed save is logged and the purchase proceeds without an
// attachment.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.CarPurchase, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	vehicle, err := s.validateCreate(ctx, input)
	if err != nil {
		return nil, err
	}

	var documentPath *string
	if input.Document != nil {
		relPath, err := s.store.Save(input.Document, paymentDocsDir)
		if err != nil {
			log.Printf("Warning: failed to store purchase document: %v", err)
		} else {
			documentPath = &relPath
		}
	}

	sellerType := input.Seller.SellerType
	if sellerType == "" {
		sellerType = enum.SellerTypeIndividual
	}

	purchase := &entity.CarPurchase{
		TenantID:        &tenantID,
		VehicleID:       input.VehicleID,
		PurchaseDate:    input.PurchaseDate,
		PurchasePrice:   input.PurchasePrice,
		PaymentMethodID: input.PaymentMethodID,
		InvoiceNumber:   input.InvoiceNumber,
		TaxAmount:       input.TaxAmount,
		TaxDetails:      input.TaxDetails,
		Branch:          input.Branch,
		DocumentPath:    documentPath,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		seller, err := s.sellerRepo.Upsert(ctx, &entity.Seller{
			TenantID:   &tenantID,
			Name:       input.Seller.Name,
			NICOrReg:   input.Seller.NICOrReg,
			Address:    input.Seller.Address,
			Phone:      input.Seller.Phone,
			Email:      input.Seller.Email,
			SellerType: sellerType,
		})
		if err != nil {
			return err
		}

		if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}
		if err := s.purchaseRepo.ReplaceSellers(ctx, purchase, []uint{seller.ID}); err != nil {
			return err
		}

		if next, changed := lifecycle.Next(vehicle.Status, lifecycle.EventPurchaseCreated); changed {
			return s.vehicleRepo.UpdateFields(ctx, vehicle.ID, map[string]interface{}{"status": next})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetWithRelations(ctx, purchase.ID)
}

// UpdatePurchase edits an existing purchase. A replacement document removes
// the old file only after the new one is safely stored. Vehicle status is
// never touched by an edit.
func (s *PurchaseService) UpdatePurchase(ctx context.Context, id uint, input *UpdatePurchaseInput) (*entity.CarPurchase, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}

	var v apperror.Violations
	v.AddIf(input.PurchasePrice != nil && *input.PurchasePrice < 0, "purchase_price", "purchase price must be non-negative")
	v.AddIf(input.TaxAmount != nil && *input.TaxAmount < 0, "tax_amount", "tax amount must be non-negative")
	v.AddIf(input.InvoiceNumber != nil && *input.InvoiceNumber == "", "invoice_number", "invoice number cannot be empty")
	if input.Seller != nil {
		v.AddIf(input.Seller.Name == "", "seller.name", "seller name is required")
		v.AddIf(input.Seller.Phone == "", "seller.phone", "seller phone is required")
		v.AddIf(input.Seller.SellerType != "" && !input.Seller.SellerType.Valid(), "seller.seller_type", "invalid seller type")
	}
	if input.PaymentMethodID != nil {
		method, err := s.paymentMethodRepo.GetByID(ctx, *input.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		v.AddIf(method == nil, "payment_method_id", "payment method does not exist")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	oldDocument := purchase.DocumentPath
	var newDocument *string
	if input.Document != nil {
		relPath, err := s.store.Save(input.Document, paymentDocsDir)
		if err != nil {
			log.Printf("Warning: failed to store replacement document: %v", err)
		} else {
			newDocument = &relPath
		}
	}

	if input.PurchaseDate != nil {
		purchase.PurchaseDate = *input.PurchaseDate
	}
	if input.PurchasePrice != nil {
		purchase.PurchasePrice = *input.PurchasePrice
	}
	if input.PaymentMethodID != nil {
		purchase.PaymentMethodID = *input.PaymentMethodID
	}
	if input.InvoiceNumber != nil {
		purchase.InvoiceNumber = *input.InvoiceNumber
	}
	if input.TaxAmount != nil {
		purchase.TaxAmount = *input.TaxAmount
	}
	if input.TaxDetails != nil {
		purchase.TaxDetails = input.TaxDetails
	}
	if input.Branch != nil {
		purchase.Branch = input.Branch
	}
	if newDocument != nil {
		purchase.DocumentPath = newDocument
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if input.Seller != nil {
			sellerType := input.Seller.SellerType
			if sellerType == "" {
				sellerType = enum.SellerTypeIndividual
			}
			seller, err := s.sellerRepo.Upsert(ctx, &entity.Seller{
				TenantID:   &tenantID,
				Name:       input.Seller.Name,
				NICOrReg:   input.Seller.NICOrReg,
				Address:    input.Seller.Address,
				Phone:      input.Seller.Phone,
				Email:      input.Seller.Email,
				SellerType: sellerType,
			})
			if err != nil {
				return err
			}
			if err := s.purchaseRepo.ReplaceSellers(ctx, purchase, []uint{seller.ID}); err != nil {
				return err
			}
		}
		return s.purchaseRepo.Update(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}

	if newDocument != nil && oldDocument != nil {
		if err := s.store.Delete(*oldDocument); err != nil {
			log.Printf("Warning: failed to remove replaced document %s: %v", *oldDocument, err)
		}
	}

	return s.purchaseRepo.GetWithRelations(ctx, purchase.ID)
}

// DeletePurchase removes a purchase row, detaches its sellers and cleans up
// the attachment. The vehicle's status is left alone; undoing an intake is
// an explicit inventory edit.
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uint) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase")
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.purchaseRepo.DetachSellers(ctx, purchase); err != nil {
			return err
		}
		return s.purchaseRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	if purchase.DocumentPath != nil {
		if err := s.store.Delete(*purchase.DocumentPath); err != nil {
			log.Printf("Warning: failed to remove document %s: %v", *purchase.DocumentPath, err)
		}
	}
	return nil
}

// GetPurchase returns a purchase with its vehicle, sellers and payment method
func (s *PurchaseService) GetPurchase(ctx context.Context, id uint) (*entity.CarPurchase, error) {
	purchase, err := s.purchaseRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases returns the purchase ledger, newest first
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.CarPurchase, error) {
	return s.purchaseRepo.List(ctx, params)
}

// ListPaymentMethods returns the payment method lookup for purchase forms
func (s *PurchaseService) ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return s.paymentMethodRepo.ListAll(ctx)
}

// ListBranches returns the active branches for purchase forms
func (s *PurchaseService) ListBranches(ctx context.Context) ([]entity.Dealer, error) {
	return s.dealerRepo.ListActive(ctx)
}
