package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autolanka/vsms-api/internal/config"
	domainRepo "github.com/autolanka/vsms-api/internal/domain/repository"
	"github.com/autolanka/vsms-api/internal/presentation/http/handler"
	"github.com/autolanka/vsms-api/internal/presentation/http/middleware"
	"github.com/autolanka/vsms-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Vehicle  *handler.VehicleHandler
	Purchase *handler.PurchaseHandler
	Sale     *handler.SaleHandler
	Transfer *handler.TransferHandler
	Dealer   *handler.DealerHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	TenantRepo      domainRepo.TenantRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Uploaded files (vehicle images, payment documents)
	router.Static("/storage", deps.Cfg.Storage.Path)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h)

		// Protected routes (authentication + tenant resolution required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.TenantMiddleware(deps.TenantRepo, deps.Cfg.App.AllowDefaultTenant))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers) {
	account := v1.Group("/account")
	{
		account.POST("/login", h.Auth.Login)
		account.POST("/register", h.Auth.Register)
	}

	// Public storefront endpoints
	vehicles := v1.Group("/vehicles")
	{
		vehicles.GET("/landing", h.Vehicle.Landing)
		vehicles.GET("/public/:id", h.Vehicle.GetPublic)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Account routes
	protected.POST("/account/logout", h.Auth.Logout)
	protected.GET("/account/me", h.Auth.Me)

	registerVehicleRoutes(protected, h)
	registerPurchaseRoutes(protected, h, deps)
	registerSaleRoutes(protected, h)
	registerTransferRoutes(protected, h)
	registerDealerRoutes(protected, h)
}

func registerVehicleRoutes(protected *gin.RouterGroup, h *Handlers) {
	vehicles := protected.Group("/vehicles")
	{
		vehicles.GET("", h.Vehicle.List)
		vehicles.POST("", h.Vehicle.Create)
		vehicles.GET("/:id", h.Vehicle.Get)
		vehicles.PUT("/:id", h.Vehicle.Update)
		vehicles.DELETE("/:id", h.Vehicle.Delete)
		vehicles.POST("/:id/images", h.Vehicle.UploadImages)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	purchases := protected.Group("/car-purchases")
	{
		purchases.GET("", h.Purchase.List)
		// Purchase creation uses idempotency middleware to prevent duplicates
		purchases.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Purchase.Create)
		purchases.GET("/search-vehicles", h.Vehicle.Search)
		// Full vehicle card for the purchase form after autocomplete selection
		purchases.GET("/vehicle-details/:id", h.Vehicle.Get)
		purchases.GET("/branches", h.Purchase.Branches)
		purchases.GET("/payment-methods", h.Purchase.PaymentMethods)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.PUT("/:id", h.Purchase.Update)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/statistics", h.Sale.Statistics)
		sales.GET("/:id", h.Sale.Get)
	}
}

func registerTransferRoutes(protected *gin.RouterGroup, h *Handlers) {
	transfers := protected.Group("/transfers")
	{
		transfers.GET("", h.Transfer.List)
		transfers.POST("", h.Transfer.Create)
		transfers.GET("/dealers", h.Transfer.Dealers)
		transfers.GET("/:id", h.Transfer.Get)
		transfers.PUT("/:id", h.Transfer.Update)
		transfers.DELETE("/:id", h.Transfer.Delete)
	}
}

func registerDealerRoutes(protected *gin.RouterGroup, h *Handlers) {
	dealers := protected.Group("/dealers")
	{
		dealers.GET("", h.Dealer.ListActive)
		dealers.GET("/all", h.Dealer.ListAll)
		dealers.GET("/:id", h.Dealer.Get)
	}
}
