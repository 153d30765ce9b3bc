package middleware

import (
	"github.com/autolanka/vsms-api/internal/domain/repository"
	infraRepo "github.com/autolanka/vsms-api/internal/infrastructure/repository"
	"github.com/autolanka/vsms-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// TenantMiddleware resolves the tenant for the request from the token's
// tenant claim. When the claim is absent and allowDefault is set (single
// branch installs, local dev) the lowest-id tenant is used; otherwise the
// request fails.
func TenantMiddleware(tenantRepo repository.TenantRepository, allowDefault bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claimed, exists := c.Get("claim_tenant_id"); exists {
			if tenantID, ok := claimed.(uint); ok && tenantID != 0 {
				bind(c, tenantID)
				c.Next()
				return
			}
		}

		if !allowDefault {
			response.BadRequest(c, "Tenant could not be resolved for this request")
			c.Abort()
			return
		}

		tenant, err := tenantRepo.First(c.Request.Context())
		if err != nil || tenant == nil {
			response.BadRequest(c, "Tenant could not be resolved for this request")
			c.Abort()
			return
		}

		bind(c, tenant.ID)
		c.Next()
	}
}

// bind records the tenant both in the Gin context (for middleware and
// handlers) and in the request context (for services and repositories).
func bind(c *gin.Context, tenantID uint) {
	c.Set("tenant_id", tenantID)
	ctx := infraRepo.WithTenant(c.Request.Context(), tenantID)
	c.Request = c.Request.WithContext(ctx)
}

// RequireTenant ensures a valid tenant context exists
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, exists := c.Get("tenant_id")
		if !exists {
			response.BadRequest(c, "Tenant context required")
			c.Abort()
			return
		}

		id, ok := tenantID.(uint)
		if !ok || id == 0 {
			response.BadRequest(c, "Invalid tenant context")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetTenantID retrieves the tenant ID from gin context
func GetTenantID(c *gin.Context) uint {
	tenantID, exists := c.Get("tenant_id")
	if !exists {
		return 0
	}
	id, ok := tenantID.(uint)
	if !ok {
		return 0
	}
	return id
}
