package repository

import (
	"context"
	"errors"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	domainRepo "github.com/autolanka/vsms-api/internal/domain/repository"
	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) domainRepo.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return conn(ctx, r.db).Create(vehicle).Error
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) GetWithRelations(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Preload("Registration").Preload("Import").Preload("Images").Preload("Dealer").
		First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

// GetPublicByID omits the tenant scope, like ListForLanding: storefront
// visitors have no tenant in their context and the fail-safe scope would
// hide every vehicle from them.
func (r *vehicleRepository) GetPublicByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := conn(ctx, r.db).
		Preload("Registration").Preload("Import").Preload("Images").Preload("Dealer").
		First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return conn(ctx, r.db).Save(vehicle).Error
}

func (r *vehicleRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return conn(ctx, r.db).Model(&entity.Vehicle{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *vehicleRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Delete(&entity.Vehicle{}, "id = ?", id).Error
}

// List returns the admin inventory view. With no explicit status filter
// only Available vehicles are returned; AllStatuses lifts the filter.
func (r *vehicleRepository) List(ctx context.Context, params *domainRepo.VehicleFilterParams) ([]entity.Vehicle, int64, error) {
	var vehicles []entity.Vehicle
	var total int64

	query := conn(ctx, r.db).Model(&entity.Vehicle{}).Scopes(TenantScope(ctx))

	if !params.AllStatuses {
		status := enum.VehicleStatusAvailable
		if params.Status != nil {
			status = *params.Status
		}
		query = query.Where("status = ?", status)
	}

	if params.DealerID != nil {
		query = query.Where("dealer_id = ?", *params.DealerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Registration").Preload("Import").Preload("Images").Preload("Dealer").
		Order("created_at DESC").
		Find(&vehicles).Error

	return vehicles, total, err
}

// ListForLanding serves the public storefront. Only Available vehicles are
// visible regardless of the filters supplied.
func (r *vehicleRepository) ListForLanding(ctx context.Context, params *domainRepo.LandingFilterParams) ([]entity.Vehicle, int64, error) {
	var vehicles []entity.Vehicle
	var total int64

	query := conn(ctx, r.db).Model(&entity.Vehicle{}).
		Where("status = ?", enum.VehicleStatusAvailable)

	if params.Make != nil {
		query = query.Where("make ILIKE ?", "%"+*params.Make+"%")
	}
	if params.FuelType != nil {
		query = query.Where("fuel_type = ?", *params.FuelType)
	}
	if params.TransmissionType != nil {
		query = query.Where("transmission_type = ?", *params.TransmissionType)
	}
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Registration").Preload("Import").Preload("Images").Preload("Dealer").
		Order("created_at DESC").
		Find(&vehicles).Error

	return vehicles, total, err
}

// Search backs the transaction-form autocomplete. The dealer join is a left
// join so vehicles not assigned to a branch still match.
func (r *vehicleRepository) Search(ctx context.Context, term string, limit int) ([]domainRepo.VehicleSearchRow, error) {
	var rows []domainRepo.VehicleSearchRow
	pattern := "%" + term + "%"
	err := conn(ctx, r.db).Model(&entity.Vehicle{}).
		Scopes(TenantScope(ctx)).
		Select("vehicles.id, vehicles.stock_number, vehicles.make, vehicles.model, vehicles.year, vehicles.price, vehicles.status, vehicles.dealer_id, dealers.name AS dealer_name").
		Joins("LEFT JOIN dealers ON dealers.id = vehicles.dealer_id").
		Where("vehicles.stock_number ILIKE ? OR vehicles.make ILIKE ? OR vehicles.model ILIKE ? OR vehicles.vehicle_code ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("vehicles.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *vehicleRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Vehicle{}).
		Where("vehicle_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *vehicleRepository) StockNumberExists(ctx context.Context, stockNumber string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Vehicle{}).
		Where("stock_number = ?", stockNumber).
		Count(&count).Error
	return count > 0, err
}

// ReplaceRegistration swaps the vehicle's detail record to a registration
// row, removing any import row left over from a registration type change.
func (r *vehicleRepository) ReplaceRegistration(ctx context.Context, vehicleID uint, reg *entity.VehicleRegistration) error {
	db := conn(ctx, r.db)
	if err := db.Where("vehicle_id = ?", vehicleID).Delete(&entity.VehicleImport{}).Error; err != nil {
		return err
	}
	if err := db.Where("vehicle_id = ?", vehicleID).Delete(&entity.VehicleRegistration{}).Error; err != nil {
		return err
	}
	reg.VehicleID = vehicleID
	return db.Create(reg).Error
}

// ReplaceImport is the mirror of ReplaceRegistration for imported vehicles.
func (r *vehicleRepository) ReplaceImport(ctx context.Context, vehicleID uint, imp *entity.VehicleImport) error {
	db := conn(ctx, r.db)
	if err := db.Where("vehicle_id = ?", vehicleID).Delete(&entity.VehicleRegistration{}).Error; err != nil {
		return err
	}
	if err := db.Where("vehicle_id = ?", vehicleID).Delete(&entity.VehicleImport{}).Error; err != nil {
		return err
	}
	imp.VehicleID = vehicleID
	return db.Create(imp).Error
}

func (r *vehicleRepository) AddImage(ctx context.Context, image *entity.VehicleImage) error {
	return conn(ctx, r.db).Create(image).Error
}
