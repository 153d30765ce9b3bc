package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/autolanka/vsms-api/internal/application/service"
	"github.com/autolanka/vsms-api/internal/config"
	"github.com/autolanka/vsms-api/internal/infrastructure/database"
	"github.com/autolanka/vsms-api/internal/infrastructure/repository"
	"github.com/autolanka/vsms-api/internal/infrastructure/storage"
	"github.com/autolanka/vsms-api/internal/presentation/http/handler"
	"github.com/autolanka/vsms-api/internal/presentation/http/routes"
	"github.com/autolanka/vsms-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize file storage
	store := storage.NewLocalStore(cfg.Storage.Path)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	dealerRepo := repository.NewDealerRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	buyerRepo := repository.NewBuyerRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, tenantRepo, jwtManager, cfg.App.RegistrationEnabled)
	vehicleService := service.NewVehicleService(vehicleRepo, dealerRepo, txManager, store, cfg.App.VehicleCodePrefix)
	purchaseService := service.NewPurchaseService(purchaseRepo, vehicleRepo, sellerRepo, paymentMethodRepo, dealerRepo, txManager, store)
	saleService := service.NewSaleService(saleRepo, vehicleRepo, buyerRepo, sellerRepo, paymentMethodRepo, txManager)
	transferService := service.NewTransferService(transferRepo, vehicleRepo, dealerRepo, txManager)
	dealerService := service.NewDealerService(dealerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Vehicle:  handler.NewVehicleHandler(vehicleService, cfg.Storage.BaseURL),
		Purchase: handler.NewPurchaseHandler(purchaseService, cfg.Storage.BaseURL),
		Sale:     handler.NewSaleHandler(saleService),
		Transfer: handler.NewTransferHandler(transferService, dealerService),
		Dealer:   handler.NewDealerHandler(dealerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		TenantRepo:      tenantRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
