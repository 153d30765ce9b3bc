package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/autolanka/vsms-api/internal/application/service"
	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/internal/domain/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVehicleRepo records the listing filters the handler wires through the
// service layer.
type stubVehicleRepo struct {
	lastList      *repository.VehicleFilterParams
	lastLanding   *repository.LandingFilterParams
	detail        *entity.Vehicle
	publicVehicle *entity.Vehicle
}

func (r *stubVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error { return nil }
func (r *stubVehicleRepo) GetByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	return nil, nil
}
func (r *stubVehicleRepo) GetWithRelations(ctx context.Context, id uint) (*entity.Vehicle, error) {
	return r.detail, nil
}
func (r *stubVehicleRepo) GetPublicByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	return r.publicVehicle, nil
}
func (r *stubVehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error { return nil }
func (r *stubVehicleRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return nil
}
func (r *stubVehicleRepo) Delete(ctx context.Context, id uint) error { return nil }
func (r *stubVehicleRepo) List(ctx context.Context, params *repository.VehicleFilterParams) ([]entity.Vehicle, int64, error) {
	r.lastList = params
	return nil, 0, nil
}
func (r *stubVehicleRepo) ListForLanding(ctx context.Context, params *repository.LandingFilterParams) ([]entity.Vehicle, int64, error) {
	r.lastLanding = params
	return nil, 0, nil
}
func (r *stubVehicleRepo) Search(ctx context.Context, term string, limit int) ([]repository.VehicleSearchRow, error) {
	return []repository.VehicleSearchRow{}, nil
}
func (r *stubVehicleRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	return false, nil
}
func (r *stubVehicleRepo) StockNumberExists(ctx context.Context, stockNumber string) (bool, error) {
	return false, nil
}
func (r *stubVehicleRepo) ReplaceRegistration(ctx context.Context, vehicleID uint, reg *entity.VehicleRegistration) error {
	return nil
}
func (r *stubVehicleRepo) ReplaceImport(ctx context.Context, vehicleID uint, imp *entity.VehicleImport) error {
	return nil
}
func (r *stubVehicleRepo) AddImage(ctx context.Context, image *entity.VehicleImage) error { return nil }

func newVehicleHandlerFixture() (*VehicleHandler, *stubVehicleRepo, *gin.Engine) {
	repo := &stubVehicleRepo{}
	svc := service.NewVehicleService(repo, nil, nil, nil, "VH")
	h := NewVehicleHandler(svc, "http://localhost:8080")

	router := gin.New()
	router.GET("/vehicles", h.List)
	router.GET("/vehicles/landing", h.Landing)
	router.GET("/vehicles/:id", h.Get)
	router.GET("/vehicles/public/:id", h.GetPublic)
	router.GET("/car-purchases/vehicle-details/:id", h.Get)
	return h, repo, router
}

func TestVehicleListDefaultsToAvailable(t *testing.T) {
	_, repo, router := newVehicleHandlerFixture()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.lastList == nil {
		t.Fatal("repository never queried")
	}
	if repo.lastList.Status != nil || repo.lastList.AllStatuses {
		t.Errorf("filter = %+v, want the default Available-only view", repo.lastList)
	}
	if repo.lastList.Pagination.PerPage != 50 {
		t.Errorf("page size = %d, want default 50", repo.lastList.Pagination.PerPage)
	}
	if !strings.Contains(w.Body.String(), `"vehicles":[]`) {
		t.Errorf("body = %s, want an empty vehicles array", w.Body.String())
	}
}

func TestVehicleListStatusAll(t *testing.T) {
	_, repo, router := newVehicleHandlerFixture()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles?status=all", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !repo.lastList.AllStatuses {
		t.Error("status=all did not lift the status filter")
	}
}

func TestVehicleListExplicitStatus(t *testing.T) {
	_, repo, router := newVehicleHandlerFixture()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles?status=Sold", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if repo.lastList.Status == nil || *repo.lastList.Status != enum.VehicleStatusSold {
		t.Errorf("status filter = %v, want Sold", repo.lastList.Status)
	}
}

func TestVehicleListInvalidStatus(t *testing.T) {
	_, repo, router := newVehicleHandlerFixture()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles?status=Scrapped", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if repo.lastList != nil {
		t.Error("repository queried despite an invalid status")
	}
}

func TestLandingDefaultsToEight(t *testing.T) {
	_, repo, router := newVehicleHandlerFixture()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles/landing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if repo.lastLanding.Pagination.PerPage != 8 {
		t.Errorf("page size = %d, want landing default 8", repo.lastLanding.Pagination.PerPage)
	}
}

func TestLandingInvalidFuelType(t *testing.T) {
	_, repo, router := newVehicleHandlerFixture()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles/landing?fuel_type=Coal", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if repo.lastLanding != nil {
		t.Error("repository queried despite an invalid fuel type")
	}
}

func TestVehicleGetInvalidID(t *testing.T) {
	_, _, router := newVehicleHandlerFixture()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles/abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// The storefront detail page is served to visitors with no tenant in their
// request context, so it must resolve through the unscoped lookup rather
// than the tenant-scoped one.
func TestVehiclePublicDetailWithoutTenant(t *testing.T) {
	_, repo, router := newVehicleHandlerFixture()
	repo.publicVehicle = &entity.Vehicle{
		ID:               7,
		Make:             "Toyota",
		Model:            "Aqua",
		RegistrationType: enum.RegistrationTypeRegistered,
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles/public/7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"make":"Toyota"`) {
		t.Errorf("body = %s, want the vehicle projection", w.Body.String())
	}
}

func TestPurchaseFormVehicleDetails(t *testing.T) {
	_, repo, router := newVehicleHandlerFixture()
	repo.detail = &entity.Vehicle{
		ID:               10,
		StockNumber:      "AB12C",
		Make:             "Honda",
		Model:            "Vezel",
		RegistrationType: enum.RegistrationTypeUnregistered,
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/car-purchases/vehicle-details/10", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"stockNumber":"AB12C"`) {
		t.Errorf("body = %s, want the vehicle projection", w.Body.String())
	}
}

func TestVehicleGetMissing(t *testing.T) {
	_, _, router := newVehicleHandlerFixture()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles/7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
