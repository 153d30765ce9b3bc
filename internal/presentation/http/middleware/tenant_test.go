package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	infraRepo "github.com/autolanka/vsms-api/internal/infrastructure/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTenantRepo struct {
	first *entity.Tenant
}

func (r *stubTenantRepo) GetByID(ctx context.Context, id uint) (*entity.Tenant, error) {
	return nil, nil
}

func (r *stubTenantRepo) First(ctx context.Context) (*entity.Tenant, error) {
	return r.first, nil
}

func resolveTenant(t *testing.T, repo *stubTenantRepo, allowDefault bool, claim *uint) (int, *uint) {
	t.Helper()
	var resolved *uint
	router := gin.New()
	if claim != nil {
		claimed := *claim
		router.Use(func(c *gin.Context) {
			c.Set("claim_tenant_id", claimed)
		})
	}
	router.Use(TenantMiddleware(repo, allowDefault))
	router.GET("/whoami", func(c *gin.Context) {
		if id, ok := infraRepo.GetTenantID(c.Request.Context()); ok {
			resolved = &id
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)
	return w.Code, resolved
}

func TestTenantFromClaim(t *testing.T) {
	claim := uint(7)
	code, resolved := resolveTenant(t, &stubTenantRepo{}, false, &claim)

	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resolved == nil || *resolved != 7 {
		t.Errorf("resolved tenant = %v, want 7", resolved)
	}
}

func TestTenantDefaultFallback(t *testing.T) {
	repo := &stubTenantRepo{first: &entity.Tenant{ID: 3}}
	code, resolved := resolveTenant(t, repo, true, nil)

	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resolved == nil || *resolved != 3 {
		t.Errorf("resolved tenant = %v, want lowest-id fallback 3", resolved)
	}
}

func TestTenantMissingClaimRejected(t *testing.T) {
	code, resolved := resolveTenant(t, &stubTenantRepo{first: &entity.Tenant{ID: 3}}, false, nil)

	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when fallback is disabled", code)
	}
	if resolved != nil {
		t.Errorf("resolved tenant = %v, want none", resolved)
	}
}

func TestTenantNoTenantsSeeded(t *testing.T) {
	code, _ := resolveTenant(t, &stubTenantRepo{}, true, nil)

	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when no tenant exists", code)
	}
}
