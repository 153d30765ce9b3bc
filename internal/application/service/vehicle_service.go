package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"mime/multipart"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	infraRepo "github.com/autolanka/vsms-api/internal/infrastructure/repository"
	"github.com/autolanka/vsms-api/internal/infrastructure/storage"
	"github.com/autolanka/vsms-api/pkg/apperror"
	"github.com/autolanka/vsms-api/pkg/pagination"
)

const (
	stockNumberLength  = 5
	stockNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	generateAttempts   = 10
)

// VehicleService handles vehicle registration, editing and retrieval
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
	dealerRepo  repository.DealerRepository
	txManager   repository.TxManager
	store       storage.Store
	codePrefix  string
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	dealerRepo repository.DealerRepository,
	txManager repository.TxManager,
	store storage.Store,
	codePrefix string,
) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		dealerRepo:  dealerRepo,
		txManager:   txManager,
		store:       store,
		codePrefix:  codePrefix,
	}
}

// RegistrationInput holds the detail record for registered vehicles
type RegistrationInput struct {
	RegistrationNumber     *string
	NumberPlate            *string
	RegistrationDate       *time.Time
	NumberOfPreviousOwners int
}

// ImportInput holds the detail record for unregistered (imported) vehicles
type ImportInput struct {
	ChassisNumber *string
	EngineNumber  *string
	ImportYear    *int
	AuctionGrade  *string
}

// ImageUpload is one uploaded photo with its category slot
type ImageUpload struct {
	Category enum.ImageCategory
	File     *multipart.FileHeader
}

// CreateVehicleInput represents the vehicle registration input
type CreateVehicleInput struct {
	Make             string
	Model            string
	SubModel         *string
	VehicleType      enum.VehicleType
	Year             int
	Color            string
	CountryOfOrigin  string
	FuelType         enum.FuelType
	Mileage          int
	TransmissionType enum.TransmissionType
	EngineSize       *string
	VIN              *string
	RegistrationType enum.RegistrationType
	Price            float64
	DealerID         *uint
	// Status is optional; vehicles enter inventory as Available when the
	// form sends none.
	Status       enum.VehicleStatus
	Description  *string
	Registration *RegistrationInput
	Import       *ImportInput
	Images       []ImageUpload
}

// UpdateVehicleInput represents the admin vehicle edit input. Nil pointers
// leave the stored value untouched; status changes here are explicit admin
// overrides, including reversal back to Available.
type UpdateVehicleInput struct {
	Make             *string
	Model            *string
	SubModel         *string
	VehicleType      *enum.VehicleType
	Year             *int
	Color            *string
	CountryOfOrigin  *string
	FuelType         *enum.FuelType
	Mileage          *int
	TransmissionType *enum.TransmissionType
	EngineSize       *string
	VIN              *string
	RegistrationType *enum.RegistrationType
	Price            *float64
	DealerID         *uint
	Status           *enum.VehicleStatus
	Description      *string
	Registration     *RegistrationInput
	Import           *ImportInput
}

func (s *VehicleService) validateCreate(ctx context.Context, input *CreateVehicleInput) error {
	var v apperror.Violations
	v.AddIf(input.Make == "", "make", "make is required")
	v.AddIf(input.Model == "", "model", "model is required")
	v.AddIf(input.Color == "", "color", "color is required")
	v.AddIf(input.CountryOfOrigin == "", "country_of_origin", "country of origin is required")
	v.AddIf(!input.VehicleType.Valid(), "vehicle_type", "invalid vehicle type")
	v.AddIf(!input.FuelType.Valid(), "fuel_type", "invalid fuel type")
	v.AddIf(!input.TransmissionType.Valid(), "transmission_type", "invalid transmission type")
	v.AddIf(!input.RegistrationType.Valid(), "registration_type", "registration type must be Registered or Unregistered")
	v.AddIf(input.Status != "" && !input.Status.Valid(), "status", "invalid vehicle status")
	v.AddIf(input.Year < 1900 || input.Year > time.Now().Year()+1, "year", "year is out of range")
	v.AddIf(input.Mileage < 0, "mileage", "mileage must be non-negative")
	v.AddIf(input.Price < 0, "price", "price must be non-negative")
	for _, img := range input.Images {
		v.AddIf(!img.Category.Valid(), "images", fmt.Sprintf("invalid image category %q", img.Category))
	}

	if input.DealerID != nil {
		dealer, err := s.dealerRepo.GetByID(ctx, *input.DealerID)
		if err != nil {
			return err
		}
		v.AddIf(dealer == nil, "dealer_id", "dealer does not exist")
	}

	return v.Err()
}

// CreateVehicle registers a new vehicle together with its detail record and
// any uploaded photos. The vehicle enters inventory as Available unless the
// form supplied a status.
func (s *VehicleService) CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*entity.Vehicle, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrTenantRequired
	}

	if err := s.validateCreate(ctx, input); err != nil {
		return nil, err
	}

	code, err := s.generateVehicleCode(ctx)
	if err != nil {
		return nil, err
	}
	stockNumber, err := s.generateStockNumber(ctx)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = enum.VehicleStatusAvailable
	}

	vehicle := &entity.Vehicle{
		TenantID:         &tenantID,
		VehicleCode:      code,
		StockNumber:      stockNumber,
		Make:             input.Make,
		Model:            input.Model,
		SubModel:         input.SubModel,
		VehicleType:      input.VehicleType,
		Year:             input.Year,
		Color:            input.Color,
		CountryOfOrigin:  input.CountryOfOrigin,
		FuelType:         input.FuelType,
		Mileage:          input.Mileage,
		TransmissionType: input.TransmissionType,
		EngineSize:       input.EngineSize,
		VIN:              input.VIN,
		RegistrationType: input.RegistrationType,
		Price:            input.Price,
		DealerID:         input.DealerID,
		Status:           status,
		Description:      input.Description,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
			return err
		}

		if input.RegistrationType == enum.RegistrationTypeRegistered {
			reg := &entity.VehicleRegistration{}
			if input.Registration != nil {
				reg.RegistrationNumber = input.Registration.RegistrationNumber
				reg.NumberPlate = input.Registration.NumberPlate
				reg.RegistrationDate = input.Registration.RegistrationDate
				reg.NumberOfPreviousOwners = input.Registration.NumberOfPreviousOwners
			}
			if err := s.vehicleRepo.ReplaceRegistration(ctx, vehicle.ID, reg); err != nil {
				return err
			}
		} else {
			imp := &entity.VehicleImport{}
			if input.Import != nil {
				imp.ChassisNumber = input.Import.ChassisNumber
				imp.EngineNumber = input.Import.EngineNumber
				imp.ImportYear = input.Import.ImportYear
				imp.AuctionGrade = input.Import.AuctionGrade
			}
			if err := s.vehicleRepo.ReplaceImport(ctx, vehicle.ID, imp); err != nil {
				return err
			}
		}

		for _, img := range input.Images {
			if err := s.saveImage(ctx, vehicle.ID, img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetWithRelations(ctx, vehicle.ID)
}

func (s *VehicleService) saveImage(ctx context.Context, vehicleID uint, img ImageUpload) error {
	relPath, err := s.store.Save(img.File, fmt.Sprintf("vehicles/%d", vehicleID))
	if err != nil {
		return fmt.Errorf("failed to store vehicle image: %w", err)
	}
	return s.vehicleRepo.AddImage(ctx, &entity.VehicleImage{
		VehicleID:     vehicleID,
		ImageCategory: img.Category,
		ImageURL:      relPath,
	})
}

// AddImages uploads additional photos to an existing vehicle
func (s *VehicleService) AddImages(ctx context.Context, vehicleID uint, uploads []ImageUpload) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	var v apperror.Violations
	for _, img := range uploads {
		v.AddIf(!img.Category.Valid(), "images", fmt.Sprintf("invalid image category %q", img.Category))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	for _, img := range uploads {
		if err := s.saveImage(ctx, vehicleID, img); err != nil {
			return nil, err
		}
	}
	return s.vehicleRepo.GetWithRelations(ctx, vehicleID)
}

// UpdateVehicle applies an admin edit. Changing the registration type swaps
// the detail record; an explicit Status value overrides whatever the
// transaction workflows set, including reversal back to Available.
func (s *VehicleService) UpdateVehicle(ctx context.Context, id uint, input *UpdateVehicleInput) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	var v apperror.Violations
	v.AddIf(input.VehicleType != nil && !input.VehicleType.Valid(), "vehicle_type", "invalid vehicle type")
	v.AddIf(input.FuelType != nil && !input.FuelType.Valid(), "fuel_type", "invalid fuel type")
	v.AddIf(input.TransmissionType != nil && !input.TransmissionType.Valid(), "transmission_type", "invalid transmission type")
	v.AddIf(input.RegistrationType != nil && !input.RegistrationType.Valid(), "registration_type", "registration type must be Registered or Unregistered")
	v.AddIf(input.Status != nil && !input.Status.Valid(), "status", "invalid status")
	v.AddIf(input.Year != nil && (*input.Year < 1900 || *input.Year > time.Now().Year()+1), "year", "year is out of range")
	v.AddIf(input.Mileage != nil && *input.Mileage < 0, "mileage", "mileage must be non-negative")
	v.AddIf(input.Price != nil && *input.Price < 0, "price", "price must be non-negative")

	if input.DealerID != nil {
		dealer, err := s.dealerRepo.GetByID(ctx, *input.DealerID)
		if err != nil {
			return nil, err
		}
		v.AddIf(dealer == nil, "dealer_id", "dealer does not exist")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	applyVehicleUpdate(vehicle, input)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
			return err
		}

		switch {
		case input.Registration != nil || (input.RegistrationType != nil && *input.RegistrationType == enum.RegistrationTypeRegistered):
			reg := &entity.VehicleRegistration{}
			if input.Registration != nil {
				reg.RegistrationNumber = input.Registration.RegistrationNumber
				reg.NumberPlate = input.Registration.NumberPlate
				reg.RegistrationDate = input.Registration.RegistrationDate
				reg.NumberOfPreviousOwners = input.Registration.NumberOfPreviousOwners
			}
			return s.vehicleRepo.ReplaceRegistration(ctx, vehicle.ID, reg)
		case input.Import != nil || (input.RegistrationType != nil && *input.RegistrationType == enum.RegistrationTypeUnregistered):
			imp := &entity.VehicleImport{}
			if input.Import != nil {
				imp.ChassisNumber = input.Import.ChassisNumber
				imp.EngineNumber = input.Import.EngineNumber
				imp.ImportYear = input.Import.ImportYear
				imp.AuctionGrade = input.Import.AuctionGrade
			}
			return s.vehicleRepo.ReplaceImport(ctx, vehicle.ID, imp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.vehicleRepo.GetWithRelations(ctx, vehicle.ID)
}

// DeleteVehicle removes a vehicle; detail records and images cascade.
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uint) error {
	vehicle, err := s.vehicleRepo.GetWithRelations(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperror.NewNotFoundError("Vehicle")
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Disk cleanup is best effort; stranded files do not fail the delete.
	for _, img := range vehicle.Images {
		if err := s.store.Delete(img.ImageURL); err != nil {
			log.Printf("Warning: failed to remove image file %s: %v", img.ImageURL, err)
		}
	}
	return nil
}

// GetVehicle returns a vehicle with its detail record, images and dealer
func (s *VehicleService) GetVehicle(ctx context.Context, id uint) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	return vehicle, nil
}

// GetPublicVehicle returns a vehicle for the storefront detail page without
// tenant scoping
func (s *VehicleService) GetPublicVehicle(ctx context.Context, id uint) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetPublicByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	return vehicle, nil
}

// ListVehicles returns the admin inventory view
func (s *VehicleService) ListVehicles(ctx context.Context, params *repository.VehicleFilterParams) ([]entity.Vehicle, int64, error) {
	return s.vehicleRepo.List(ctx, params)
}

// ListLandingVehicles returns the public storefront page
func (s *VehicleService) ListLandingVehicles(ctx context.Context, params *repository.LandingFilterParams) ([]entity.Vehicle, int64, error) {
	return s.vehicleRepo.ListForLanding(ctx, params)
}

// SearchVehicles backs the transaction-form autocomplete. Terms shorter than
// two characters return an empty result without touching the database.
func (s *VehicleService) SearchVehicles(ctx context.Context, term string, limit int) ([]repository.VehicleSearchRow, error) {
	if len(term) < 2 {
		return []repository.VehicleSearchRow{}, nil
	}
	if limit <= 0 || limit > pagination.MaxPerPage {
		limit = 20
	}
	return s.vehicleRepo.Search(ctx, term, limit)
}

// generateVehicleCode produces a code of the form VH<year><4 digits>,
// retrying on collision.
func (s *VehicleService) generateVehicleCode(ctx context.Context) (string, error) {
	year := time.Now().Year()
	for i := 0; i < generateAttempts; i++ {
		code := fmt.Sprintf("%s%d%04d", s.codePrefix, year, rand.Intn(10000))
		exists, err := s.vehicleRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique vehicle code")
}

// generateStockNumber produces a random 5 character alphanumeric stock
// number, retrying on collision.
func (s *VehicleService) generateStockNumber(ctx context.Context) (string, error) {
	buf := make([]byte, stockNumberLength)
	for i := 0; i < generateAttempts; i++ {
		for j := range buf {
			buf[j] = stockNumberCharset[rand.Intn(len(stockNumberCharset))]
		}
		candidate := string(buf)
		exists, err := s.vehicleRepo.StockNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique stock number")
}

func applyVehicleUpdate(vehicle *entity.Vehicle, input *UpdateVehicleInput) {
	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.SubModel != nil {
		vehicle.SubModel = input.SubModel
	}
	if input.VehicleType != nil {
		vehicle.VehicleType = *input.VehicleType
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.CountryOfOrigin != nil {
		vehicle.CountryOfOrigin = *input.CountryOfOrigin
	}
	if input.FuelType != nil {
		vehicle.FuelType = *input.FuelType
	}
	if input.Mileage != nil {
		vehicle.Mileage = *input.Mileage
	}
	if input.TransmissionType != nil {
		vehicle.TransmissionType = *input.TransmissionType
	}
	if input.EngineSize != nil {
		vehicle.EngineSize = input.EngineSize
	}
	if input.VIN != nil {
		vehicle.VIN = input.VIN
	}
	if input.RegistrationType != nil {
		vehicle.RegistrationType = *input.RegistrationType
	}
	if input.Price != nil {
		vehicle.Price = *input.Price
	}
	if input.DealerID != nil {
		vehicle.DealerID = input.DealerID
	}
	if input.Status != nil {
		vehicle.Status = *input.Status
	}
	if input.Description != nil {
		vehicle.Description = input.Description
	}
}
