package enum

// RegistrationType distinguishes locally registered vehicles from imports.
// It decides which detail record (registration vs import) a vehicle carries.
type RegistrationType string

const (
	RegistrationTypeRegistered   RegistrationType = "Registered"
	RegistrationTypeUnregistered RegistrationType = "Unregistered"
)

func (t RegistrationType) Valid() bool {
	return t == RegistrationTypeRegistered || t == RegistrationTypeUnregistered
}

// FuelType enumerates the accepted fuel types.
type FuelType string

const (
	FuelTypeGasoline     FuelType = "Gasoline"
	FuelTypeDiesel       FuelType = "Diesel"
	FuelTypeElectric     FuelType = "Electric"
	FuelTypeHybrid       FuelType = "Hybrid"
	FuelTypePluginHybrid FuelType = "Plug-in Hybrid"
)

func (t FuelType) Valid() bool {
	switch t {
	case FuelTypeGasoline, FuelTypeDiesel, FuelTypeElectric, FuelTypeHybrid, FuelTypePluginHybrid:
		return true
	}
	return false
}

// TransmissionType enumerates the accepted transmission types.
type TransmissionType string

const (
	TransmissionManual        TransmissionType = "Manual"
	TransmissionAutomatic     TransmissionType = "Automatic"
	TransmissionCVT           TransmissionType = "CVT"
	TransmissionSemiAutomatic TransmissionType = "Semi-Automatic"
)

func (t TransmissionType) Valid() bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic, TransmissionCVT, TransmissionSemiAutomatic:
		return true
	}
	return false
}

// VehicleType enumerates the body types accepted by the registration form.
type VehicleType string

const (
	VehicleTypeCar       VehicleType = "Car"
	VehicleTypeSUV       VehicleType = "SUV"
	VehicleTypeVan       VehicleType = "Van"
	VehicleTypeBus       VehicleType = "Bus"
	VehicleTypeLorry     VehicleType = "Lorry"
	VehicleTypeTruck     VehicleType = "Truck"
	VehicleTypePickup    VehicleType = "Pickup"
	VehicleTypeMinivan   VehicleType = "Minivan"
	VehicleTypeCoupe     VehicleType = "Coupe"
	VehicleTypeSedan     VehicleType = "Sedan"
	VehicleTypeHatchback VehicleType = "Hatchback"
	VehicleTypeWagon     VehicleType = "Wagon"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeSUV, VehicleTypeVan, VehicleTypeBus, VehicleTypeLorry,
		VehicleTypeTruck, VehicleTypePickup, VehicleTypeMinivan, VehicleTypeCoupe,
		VehicleTypeSedan, VehicleTypeHatchback, VehicleTypeWagon:
		return true
	}
	return false
}
