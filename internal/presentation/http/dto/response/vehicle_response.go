package response

import (
	"strings"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
)

// VehicleResponse is the camelCase projection served to clients. Exactly one
// of RegisteredDetails/UnregisteredDetails is present, matching the vehicle's
// registration type.
type VehicleResponse struct {
	ID                  uint                 `json:"id"`
	VehicleCode         string               `json:"vehicleCode"`
	StockNumber         string               `json:"stockNumber"`
	Make                string               `json:"make"`
	Model               string               `json:"model"`
	SubModel            *string              `json:"subModel,omitempty"`
	VehicleType         string               `json:"vehicleType"`
	Year                int                  `json:"year"`
	Color               string               `json:"color"`
	CountryOfOrigin     string               `json:"countryOfOrigin"`
	FuelType            string               `json:"fuelType"`
	Mileage             int                  `json:"mileage"`
	TransmissionType    string               `json:"transmissionType"`
	EngineSize          *string              `json:"engineSize,omitempty"`
	VIN                 *string              `json:"vin,omitempty"`
	RegistrationType    string               `json:"registrationType"`
	Price               float64              `json:"price"`
	DealerID            *uint                `json:"dealerId,omitempty"`
	Status              string               `json:"status"`
	Description         *string              `json:"description,omitempty"`
	RegisteredDetails   *RegisteredDetails   `json:"registeredDetails,omitempty"`
	UnregisteredDetails *UnregisteredDetails `json:"unregisteredDetails,omitempty"`
	Images              *GroupedImages       `json:"images,omitempty"`
	Dealer              *DealerResponse      `json:"dealer,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// RegisteredDetails projects the registration detail record
type RegisteredDetails struct {
	RegistrationNumber     *string `json:"registrationNumber,omitempty"`
	NumberPlate            *string `json:"numberPlate,omitempty"`
	RegistrationDate       *string `json:"registrationDate,omitempty"`
	NumberOfPreviousOwners int     `json:"numberOfPreviousOwners"`
}

// UnregisteredDetails projects the import detail record
type UnregisteredDetails struct {
	ChassisNumber *string `json:"chassisNumber,omitempty"`
	EngineNumber  *string `json:"engineNumber,omitempty"`
	ImportYear    *int    `json:"importYear,omitempty"`
	AuctionGrade  *string `json:"auctionGrade,omitempty"`
}

// GroupedImages maps each singleton category to at most one absolute URL;
// everything in the "others" category lands in the Others slice.
type GroupedImages struct {
	FrontView     *string  `json:"frontView,omitempty"`
	RearView      *string  `json:"rearView,omitempty"`
	LeftSideView  *string  `json:"leftSideView,omitempty"`
	RightSideView *string  `json:"rightSideView,omitempty"`
	Interior      *string  `json:"interior,omitempty"`
	Engine        *string  `json:"engine,omitempty"`
	Dashboard     *string  `json:"dashboard,omitempty"`
	Others        []string `json:"others"`
}

// DealerResponse is the branch summary embedded in vehicle projections
type DealerResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Status  string  `json:"status"`
}

// VehicleListResponse is the paged inventory payload
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// AbsoluteImageURL rewrites a stored /storage/ relative path to an absolute
// URL. Paths that are already absolute pass through unchanged.
func AbsoluteImageURL(baseURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + path
}

// NewVehicleResponse builds the projection for one vehicle
func NewVehicleResponse(v *entity.Vehicle, baseURL string) VehicleResponse {
	resp := VehicleResponse{
		ID:               v.ID,
		VehicleCode:      v.VehicleCode,
		StockNumber:      v.StockNumber,
		Make:             v.Make,
		Model:            v.Model,
		SubModel:         v.SubModel,
		VehicleType:      string(v.VehicleType),
		Year:             v.Year,
		Color:            v.Color,
		CountryOfOrigin:  v.CountryOfOrigin,
		FuelType:         string(v.FuelType),
		Mileage:          v.Mileage,
		TransmissionType: string(v.TransmissionType),
		EngineSize:       v.EngineSize,
		VIN:              v.VIN,
		RegistrationType: string(v.RegistrationType),
		Price:            v.Price,
		DealerID:         v.DealerID,
		Status:           v.Status.String(),
		Description:      v.Description,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}

	if v.RegistrationType == enum.RegistrationTypeRegistered && v.Registration != nil {
		details := &RegisteredDetails{
			RegistrationNumber:     v.Registration.RegistrationNumber,
			NumberPlate:            v.Registration.NumberPlate,
			NumberOfPreviousOwners: v.Registration.NumberOfPreviousOwners,
		}
		if v.Registration.RegistrationDate != nil {
			date := v.Registration.RegistrationDate.Format("2006-01-02")
			details.RegistrationDate = &date
		}
		resp.RegisteredDetails = details
	}

	if v.RegistrationType == enum.RegistrationTypeUnregistered && v.Import != nil {
		resp.UnregisteredDetails = &UnregisteredDetails{
			ChassisNumber: v.Import.ChassisNumber,
			EngineNumber:  v.Import.EngineNumber,
			ImportYear:    v.Import.ImportYear,
			AuctionGrade:  v.Import.AuctionGrade,
		}
	}

	if len(v.Images) > 0 {
		resp.Images = GroupImages(v.Images, baseURL)
	}

	if v.Dealer != nil {
		resp.Dealer = &DealerResponse{
			ID:      v.Dealer.ID,
			Name:    v.Dealer.Name,
			Address: v.Dealer.Address,
			Phone:   v.Dealer.Phone,
			Status:  v.Dealer.Status.String(),
		}
	}

	return resp
}

// GroupImages arranges a vehicle's photos into their category slots. For
// singleton categories the last stored image wins.
func GroupImages(images []entity.VehicleImage, baseURL string) *GroupedImages {
	grouped := &GroupedImages{Others: []string{}}
	for _, img := range images {
		url := AbsoluteImageURL(baseURL, img.ImageURL)
		switch img.ImageCategory {
		case enum.ImageCategoryFrontView:
			grouped.FrontView = &url
		case enum.ImageCategoryRearView:
			grouped.RearView = &url
		case enum.ImageCategoryLeftSideView:
			grouped.LeftSideView = &url
		case enum.ImageCategoryRightSideView:
			grouped.RightSideView = &url
		case enum.ImageCategoryInterior:
			grouped.Interior = &url
		case enum.ImageCategoryEngine:
			grouped.Engine = &url
		case enum.ImageCategoryDashboard:
			grouped.Dashboard = &url
		default:
			grouped.Others = append(grouped.Others, url)
		}
	}
	return grouped
}

// NewVehicleListResponse builds the paged inventory payload
func NewVehicleListResponse(vehicles []entity.Vehicle, total int64, page, limit int, baseURL string) VehicleListResponse {
	items := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		items = append(items, NewVehicleResponse(&vehicles[i], baseURL))
	}
	return VehicleListResponse{
		Vehicles: items,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
}
