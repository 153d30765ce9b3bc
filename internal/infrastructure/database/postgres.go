package database

import (
	"fmt"
	"log"

	"github.com/autolanka/vsms-api/internal/config"
	"github.com/autolanka/vsms-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Organisation entities
		&entity.Tenant{},
		&entity.User{},
		&entity.Dealer{},

		// Inventory entities
		&entity.Vehicle{},
		&entity.VehicleRegistration{},
		&entity.VehicleImport{},
		&entity.VehicleImage{},

		// Party and lookup entities
		&entity.Seller{},
		&entity.Buyer{},
		&entity.PaymentMethod{},

		// Transaction entities
		&entity.CarPurchase{},
		&entity.Sale{},
		&entity.Transfer{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the payment method lookup, the default tenant and,
// when configured, the initial admin account.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	methods := []string{"Cash", "Bank Transfer", "Cheque", "Finance", "Card"}
	for _, name := range methods {
		var existing entity.PaymentMethod
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.PaymentMethod{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create payment method %s: %v", name, err)
			}
		}
	}

	var tenant entity.Tenant
	if err := db.Order("id ASC").First(&tenant).Error; err != nil {
		tenant = entity.Tenant{Name: "Default Dealership"}
		if err := db.Create(&tenant).Error; err != nil {
			return fmt.Errorf("failed to create default tenant: %w", err)
		}
		log.Printf("Default tenant created: %s", tenant.Name)
	}

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		var existing entity.User
		if err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{
					TenantID: &tenant.ID,
					Name:     "Administrator",
					Email:    cfg.Admin.Email,
					Password: string(hashed),
					Role:     "admin",
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", cfg.Admin.Email)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", cfg.Admin.Email)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
