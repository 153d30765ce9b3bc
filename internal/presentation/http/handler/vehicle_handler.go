package handler

import (
	"github.com/autolanka/vsms-api/internal/application/service"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/request"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/response"
	"github.com/autolanka/vsms-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

const (
	defaultInventoryPageSize = 50
	defaultLandingPageSize   = 8
)

// VehicleHandler handles vehicle-related HTTP requests
type VehicleHandler struct {
	vehicleService *service.VehicleService
	storageBaseURL string
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *service.VehicleService, storageBaseURL string) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, storageBaseURL: storageBaseURL}
}

// List handles the admin inventory listing. Without a status parameter only
// Available vehicles appear; status=all lifts the filter.
func (h *VehicleHandler) List(c *gin.Context) {
	var filter request.VehicleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.VehicleFilterParams{
		Pagination: pagination.NewParams(filter.Page, filter.Limit, defaultInventoryPageSize),
		DealerID:   filter.DealerID,
	}
	switch filter.Status {
	case "":
	case "all":
		params.AllStatuses = true
	default:
		status := enum.VehicleStatus(filter.Status)
		if !status.Valid() {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}

	vehicles, total, err := h.vehicleService.ListVehicles(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicles retrieved successfully",
		response.NewVehicleListResponse(vehicles, total, params.Pagination.Page, params.Pagination.PerPage, h.storageBaseURL))
}

// Landing handles the public storefront listing
func (h *VehicleHandler) Landing(c *gin.Context) {
	var filter request.LandingFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.LandingFilterParams{
		Pagination: pagination.NewParams(filter.Page, filter.Limit, defaultLandingPageSize),
		Make:       filter.Make,
		MinPrice:   filter.MinPrice,
		MaxPrice:   filter.MaxPrice,
	}
	if filter.FuelType != nil {
		fuel := enum.FuelType(*filter.FuelType)
		if !fuel.Valid() {
			response.BadRequest(c, "Invalid fuel type filter")
			return
		}
		params.FuelType = &fuel
	}
	if filter.TransmissionType != nil {
		transmission := enum.TransmissionType(*filter.TransmissionType)
		if !transmission.Valid() {
			response.BadRequest(c, "Invalid transmission type filter")
			return
		}
		params.TransmissionType = &transmission
	}

	vehicles, total, err := h.vehicleService.ListLandingVehicles(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicles retrieved successfully",
		response.NewVehicleListResponse(vehicles, total, params.Pagination.Page, params.Pagination.PerPage, h.storageBaseURL))
}

// Get handles retrieving one vehicle with its details and images
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle retrieved successfully", response.NewVehicleResponse(vehicle, h.storageBaseURL))
}

// GetPublic handles the storefront vehicle detail page
func (h *VehicleHandler) GetPublic(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetPublicVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle retrieved successfully", response.NewVehicleResponse(vehicle, h.storageBaseURL))
}

// Create handles vehicle registration
func (h *VehicleHandler) Create(c *gin.Context) {
	var req request.CreateVehicleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateVehicleInput{
		Make:             req.Make,
		Model:            req.Model,
		SubModel:         req.SubModel,
		VehicleType:      enum.VehicleType(req.VehicleType),
		Year:             req.Year,
		Color:            req.Color,
		CountryOfOrigin:  req.CountryOfOrigin,
		FuelType:         enum.FuelType(req.FuelType),
		Mileage:          req.Mileage,
		TransmissionType: enum.TransmissionType(req.TransmissionType),
		EngineSize:       req.EngineSize,
		VIN:              req.VIN,
		RegistrationType: enum.RegistrationType(req.RegistrationType),
		Price:            req.Price,
		DealerID:         req.DealerID,
		Description:      req.Description,
		Images:           collectImageUploads(c),
	}
	if req.Status != nil {
		input.Status = enum.VehicleStatus(*req.Status)
	}

	switch input.RegistrationType {
	case enum.RegistrationTypeRegistered:
		reg := &service.RegistrationInput{
			RegistrationNumber:     req.RegistrationNumber,
			NumberPlate:            req.NumberPlate,
			NumberOfPreviousOwners: req.NumberOfPreviousOwners,
		}
		if req.RegistrationDate != nil {
			if date, ok := ParseDate(*req.RegistrationDate); ok {
				reg.RegistrationDate = &date
			}
		}
		input.Registration = reg
	case enum.RegistrationTypeUnregistered:
		input.Import = &service.ImportInput{
			ChassisNumber: req.ChassisNumber,
			EngineNumber:  req.EngineNumber,
			ImportYear:    req.ImportYear,
			AuctionGrade:  req.AuctionGrade,
		}
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vehicle registered successfully", response.NewVehicleResponse(vehicle, h.storageBaseURL))
}

// Update handles the admin vehicle edit
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req request.UpdateVehicleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateVehicleInput{
		Make:            req.Make,
		Model:           req.Model,
		SubModel:        req.SubModel,
		Year:            req.Year,
		Color:           req.Color,
		CountryOfOrigin: req.CountryOfOrigin,
		Mileage:         req.Mileage,
		EngineSize:      req.EngineSize,
		VIN:             req.VIN,
		Price:           req.Price,
		DealerID:        req.DealerID,
		Description:     req.Description,
	}
	if req.VehicleType != nil {
		vt := enum.VehicleType(*req.VehicleType)
		input.VehicleType = &vt
	}
	if req.FuelType != nil {
		ft := enum.FuelType(*req.FuelType)
		input.FuelType = &ft
	}
	if req.TransmissionType != nil {
		tt := enum.TransmissionType(*req.TransmissionType)
		input.TransmissionType = &tt
	}
	if req.RegistrationType != nil {
		rt := enum.RegistrationType(*req.RegistrationType)
		input.RegistrationType = &rt
	}
	if req.Status != nil {
		st := enum.VehicleStatus(*req.Status)
		input.Status = &st
	}

	if hasRegistrationFields(&req) {
		reg := &service.RegistrationInput{
			RegistrationNumber: req.RegistrationNumber,
			NumberPlate:        req.NumberPlate,
		}
		if req.NumberOfPreviousOwners != nil {
			reg.NumberOfPreviousOwners = *req.NumberOfPreviousOwners
		}
		if req.RegistrationDate != nil {
			if date, ok := ParseDate(*req.RegistrationDate); ok {
				reg.RegistrationDate = &date
			}
		}
		input.Registration = reg
	}
	if hasImportFields(&req) {
		input.Import = &service.ImportInput{
			ChassisNumber: req.ChassisNumber,
			EngineNumber:  req.EngineNumber,
			ImportYear:    req.ImportYear,
			AuctionGrade:  req.AuctionGrade,
		}
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle updated successfully", response.NewVehicleResponse(vehicle, h.storageBaseURL))
}

// Delete handles removing a vehicle
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle deleted successfully", nil)
}

// UploadImages handles adding photos to an existing vehicle
func (h *VehicleHandler) UploadImages(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	uploads := collectImageUploads(c)
	if len(uploads) == 0 {
		response.BadRequest(c, "No image files provided")
		return
	}

	vehicle, err := h.vehicleService.AddImages(c.Request.Context(), id, uploads)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Images uploaded successfully", response.NewVehicleResponse(vehicle, h.storageBaseURL))
}

// Search handles the transaction-form vehicle autocomplete
func (h *VehicleHandler) Search(c *gin.Context) {
	term := c.Query("search")
	rows, err := h.vehicleService.SearchVehicles(c.Request.Context(), term, 20)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vehicles retrieved successfully", rows)
}

// collectImageUploads pulls image files out of the multipart form, keyed by
// category name. The "others" field may carry multiple files.
func collectImageUploads(c *gin.Context) []service.ImageUpload {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	var uploads []service.ImageUpload
	for _, category := range enum.SingletonImageCategories {
		files := form.File[string(category)]
		if len(files) > 0 {
			uploads = append(uploads, service.ImageUpload{Category: category, File: files[0]})
		}
	}
	for _, file := range form.File[string(enum.ImageCategoryOthers)] {
		uploads = append(uploads, service.ImageUpload{Category: enum.ImageCategoryOthers, File: file})
	}
	return uploads
}

func hasRegistrationFields(req *request.UpdateVehicleRequest) bool {
	return req.RegistrationNumber != nil || req.NumberPlate != nil ||
		req.RegistrationDate != nil || req.NumberOfPreviousOwners != nil
}

func hasImportFields(req *request.UpdateVehicleRequest) bool {
	return req.ChassisNumber != nil || req.EngineNumber != nil ||
		req.ImportYear != nil || req.AuctionGrade != nil
}
