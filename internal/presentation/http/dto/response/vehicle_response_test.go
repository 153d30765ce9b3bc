package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
)

const baseURL = "http://localhost:8080"

func TestAbsoluteImageURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"storage path", baseURL, "/storage/vehicles/1/a.jpg", "http://localhost:8080/storage/vehicles/1/a.jpg"},
		{"trailing slash base", baseURL + "/", "/storage/vehicles/1/a.jpg", "http://localhost:8080/storage/vehicles/1/a.jpg"},
		{"already absolute http", baseURL, "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"already absolute https", baseURL, "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsoluteImageURL(tt.base, tt.path); got != tt.want {
				t.Errorf("AbsoluteImageURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}

func TestGroupImages(t *testing.T) {
	images := []entity.VehicleImage{
		{ImageCategory: enum.ImageCategoryFrontView, ImageURL: "/storage/vehicles/1/front_old.jpg"},
		{ImageCategory: enum.ImageCategoryFrontView, ImageURL: "/storage/vehicles/1/front_new.jpg"},
		{ImageCategory: enum.ImageCategoryInterior, ImageURL: "/storage/vehicles/1/interior.jpg"},
		{ImageCategory: enum.ImageCategoryOthers, ImageURL: "/storage/vehicles/1/extra1.jpg"},
		{ImageCategory: enum.ImageCategoryOthers, ImageURL: "/storage/vehicles/1/extra2.jpg"},
	}

	grouped := GroupImages(images, baseURL)

	if grouped.FrontView == nil || !strings.HasSuffix(*grouped.FrontView, "front_new.jpg") {
		t.Errorf("frontView = %v, last stored image must win", grouped.FrontView)
	}
	if grouped.Interior == nil || !strings.HasSuffix(*grouped.Interior, "interior.jpg") {
		t.Errorf("interior = %v", grouped.Interior)
	}
	if grouped.RearView != nil {
		t.Errorf("rearView = %v, want nil for an empty slot", grouped.RearView)
	}
	if len(grouped.Others) != 2 {
		t.Errorf("others = %v, want both extra photos", grouped.Others)
	}
	for _, url := range grouped.Others {
		if !strings.HasPrefix(url, baseURL) {
			t.Errorf("others entry %q is not absolute", url)
		}
	}
}

func TestGroupImagesEmptyOthersSerializesAsArray(t *testing.T) {
	grouped := GroupImages([]entity.VehicleImage{
		{ImageCategory: enum.ImageCategoryFrontView, ImageURL: "/storage/vehicles/1/front.jpg"},
	}, baseURL)

	data, err := json.Marshal(grouped)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"others":[]`) {
		t.Errorf("payload = %s, want others serialized as an empty array", data)
	}
}

func TestNewVehicleResponseRegistered(t *testing.T) {
	plate := "CAB-1234"
	regDate := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	v := &entity.Vehicle{
		ID:               1,
		VehicleCode:      "VH20260042",
		StockNumber:      "A1B2C",
		Make:             "Toyota",
		Model:            "Aqua",
		RegistrationType: enum.RegistrationTypeRegistered,
		Status:           enum.VehicleStatusAvailable,
		Registration: &entity.VehicleRegistration{
			NumberPlate:            &plate,
			RegistrationDate:       &regDate,
			NumberOfPreviousOwners: 2,
		},
		Import: &entity.VehicleImport{},
	}

	resp := NewVehicleResponse(v, baseURL)

	if resp.RegisteredDetails == nil {
		t.Fatal("registeredDetails missing for a Registered vehicle")
	}
	if resp.UnregisteredDetails != nil {
		t.Error("unregisteredDetails present for a Registered vehicle")
	}
	if resp.RegisteredDetails.RegistrationDate == nil || *resp.RegisteredDetails.RegistrationDate != "2020-06-15" {
		t.Errorf("registrationDate = %v, want 2020-06-15", resp.RegisteredDetails.RegistrationDate)
	}
	if resp.RegisteredDetails.NumberOfPreviousOwners != 2 {
		t.Errorf("previousOwners = %d, want 2", resp.RegisteredDetails.NumberOfPreviousOwners)
	}
	if resp.Images != nil {
		t.Error("images present for a vehicle without photos")
	}
}

func TestNewVehicleResponseUnregistered(t *testing.T) {
	chassis := "NHP10-123456"
	v := &entity.Vehicle{
		ID:               2,
		RegistrationType: enum.RegistrationTypeUnregistered,
		Status:           enum.VehicleStatusAvailable,
		Import:           &entity.VehicleImport{ChassisNumber: &chassis},
	}

	resp := NewVehicleResponse(v, baseURL)

	if resp.UnregisteredDetails == nil {
		t.Fatal("unregisteredDetails missing for an Unregistered vehicle")
	}
	if resp.RegisteredDetails != nil {
		t.Error("registeredDetails present for an Unregistered vehicle")
	}
	if resp.UnregisteredDetails.ChassisNumber == nil || *resp.UnregisteredDetails.ChassisNumber != chassis {
		t.Errorf("chassisNumber = %v, want %q", resp.UnregisteredDetails.ChassisNumber, chassis)
	}
}

func TestNewVehicleResponseCamelCaseKeys(t *testing.T) {
	v := &entity.Vehicle{
		ID:               3,
		VehicleCode:      "VH20260001",
		StockNumber:      "X9Y8Z",
		RegistrationType: enum.RegistrationTypeUnregistered,
		Status:           enum.VehicleStatusAvailable,
	}

	data, err := json.Marshal(NewVehicleResponse(v, baseURL))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	payload := string(data)
	for _, key := range []string{`"vehicleCode"`, `"stockNumber"`, `"registrationType"`, `"countryOfOrigin"`} {
		if !strings.Contains(payload, key) {
			t.Errorf("payload missing key %s: %s", key, payload)
		}
	}
	if strings.Contains(payload, `"vehicle_code"`) {
		t.Error("payload leaked a snake_case key")
	}
}

func TestNewVehicleListResponse(t *testing.T) {
	vehicles := []entity.Vehicle{
		{ID: 1, RegistrationType: enum.RegistrationTypeUnregistered, Status: enum.VehicleStatusAvailable},
		{ID: 2, RegistrationType: enum.RegistrationTypeUnregistered, Status: enum.VehicleStatusAvailable},
	}

	resp := NewVehicleListResponse(vehicles, 42, 2, 50, baseURL)

	if len(resp.Vehicles) != 2 || resp.Total != 42 || resp.Page != 2 || resp.Limit != 50 {
		t.Errorf("list = {len %d, total %d, page %d, limit %d}", len(resp.Vehicles), resp.Total, resp.Page, resp.Limit)
	}

	empty := NewVehicleListResponse(nil, 0, 1, 50, baseURL)
	data, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"vehicles":[]`) {
		t.Errorf("payload = %s, want vehicles serialized as an empty array", data)
	}
}
