package database

import (
	"fmt"
	"time"

	"farmstead/internal/logger"
	"farmstead/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// tables is the list of all models the schema store owns.
var tables = []interface{}{
	&models.Farmer{},
	&models.Crop{},
	&models.Planting{},
	&models.Equipment{},
	&models.InventoryItem{},
	&models.Transaction{},
	&models.WeatherRecord{},
	&models.User{},
}

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager opens the database selected by the configured driver: a local
// SQLite file by default, or PostgreSQL for shared deployments.
func NewManager(config *Config) (*Manager, error) {
	var dialector gorm.Dialector

	switch config.Driver {
	case "sqlite", "":
		dialector = sqlite.Open(config.Path)
	case "postgres", "postgresql":
		dialector = postgres.Open(config.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Foreign keys stay declared on the models but are not created as
		// constraints: deleting a farmer must leave existing plantings and
		// transactions in place, referencing the missing row.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// Migrate creates all tables idempotently on first use.
func (m *Manager) Migrate() error {
	logger.Get().Info("Creating database schema...")

	if err := m.db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	logger.Get().Info("Database schema is up to date")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
