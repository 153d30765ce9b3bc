package request

// CreateVehicleRequest is the vehicle registration form. It binds both JSON
// bodies and multipart forms; image files are read from the multipart form
// directly by the handler, keyed by category name.
type CreateVehicleRequest struct {
	Make             string  `form:"make" json:"make"`
	Model            string  `form:"model" json:"model"`
	SubModel         *string `form:"sub_model" json:"sub_model"`
	VehicleType      string  `form:"vehicle_type" json:"vehicle_type"`
	Year             int     `form:"year" json:"year"`
	Color            string  `form:"color" json:"color"`
	CountryOfOrigin  string  `form:"country_of_origin" json:"country_of_origin"`
	FuelType         string  `form:"fuel_type" json:"fuel_type"`
	Mileage          int     `form:"mileage" json:"mileage"`
	TransmissionType string  `form:"transmission_type" json:"transmission_type"`
	EngineSize       *string `form:"engine_size" json:"engine_size"`
	VIN              *string `form:"vin" json:"vin"`
	RegistrationType string  `form:"registration_type" json:"registration_type"`
	Price            float64 `form:"price" json:"price"`
	DealerID         *uint   `form:"dealer_id" json:"dealer_id"`
	Status           *string `form:"status" json:"status"`
	Description      *string `form:"description" json:"description"`

	// Registered vehicles
	RegistrationNumber     *string `form:"registration_number" json:"registration_number"`
	NumberPlate            *string `form:"number_plate" json:"number_plate"`
	RegistrationDate       *string `form:"registration_date" json:"registration_date"`
	NumberOfPreviousOwners int     `form:"number_of_previous_owners" json:"number_of_previous_owners"`

	// Unregistered (imported) vehicles
	ChassisNumber *string `form:"chassis_number" json:"chassis_number"`
	EngineNumber  *string `form:"engine_number" json:"engine_number"`
	ImportYear    *int    `form:"import_year" json:"import_year"`
	AuctionGrade  *string `form:"auction_grade" json:"auction_grade"`
}

// UpdateVehicleRequest is the admin edit form; nil fields are untouched
type UpdateVehicleRequest struct {
	Make             *string  `form:"make" json:"make"`
	Model            *string  `form:"model" json:"model"`
	SubModel         *string  `form:"sub_model" json:"sub_model"`
	VehicleType      *string  `form:"vehicle_type" json:"vehicle_type"`
	Year             *int     `form:"year" json:"year"`
	Color            *string  `form:"color" json:"color"`
	CountryOfOrigin  *string  `form:"country_of_origin" json:"country_of_origin"`
	FuelType         *string  `form:"fuel_type" json:"fuel_type"`
	Mileage          *int     `form:"mileage" json:"mileage"`
	TransmissionType *string  `form:"transmission_type" json:"transmission_type"`
	EngineSize       *string  `form:"engine_size" json:"engine_size"`
	VIN              *string  `form:"vin" json:"vin"`
	RegistrationType *string  `form:"registration_type" json:"registration_type"`
	Price            *float64 `form:"price" json:"price"`
	DealerID         *uint    `form:"dealer_id" json:"dealer_id"`
	Status           *string  `form:"status" json:"status"`
	Description      *string  `form:"description" json:"description"`

	RegistrationNumber     *string `form:"registration_number" json:"registration_number"`
	NumberPlate            *string `form:"number_plate" json:"number_plate"`
	RegistrationDate       *string `form:"registration_date" json:"registration_date"`
	NumberOfPreviousOwners *int    `form:"number_of_previous_owners" json:"number_of_previous_owners"`

	ChassisNumber *string `form:"chassis_number" json:"chassis_number"`
	EngineNumber  *string `form:"engine_number" json:"engine_number"`
	ImportYear    *int    `form:"import_year" json:"import_year"`
	AuctionGrade  *string `form:"auction_grade" json:"auction_grade"`
}

// VehicleFilterRequest holds the admin listing query parameters
type VehicleFilterRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Status   string `form:"status"`
	DealerID *uint  `form:"dealer_id"`
}

// LandingFilterRequest holds the public storefront query parameters
type LandingFilterRequest struct {
	Page             int      `form:"page"`
	Limit            int      `form:"limit"`
	Make             *string  `form:"make"`
	FuelType         *string  `form:"fuel_type"`
	TransmissionType *string  `form:"transmission_type"`
	MinPrice         *float64 `form:"min_price"`
	MaxPrice         *float64 `form:"max_price"`
}
