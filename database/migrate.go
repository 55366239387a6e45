package database

import (
	"fmt"

	"sentosa_backend/internal/config"
	"sentosa_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm initializes GORM with the DSN from configuration.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates the schema for all models. Used by development and
// test environments; production schemas are managed externally.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Staff{},
		&models.News{},
		&models.DestinationCountry{},
		&models.Sector{},
		&models.Position{},
		&models.Task{},
		&models.DocumentRequirement{},
		&models.Requirement{},
		&models.WorkingCondition{},
	)
}
