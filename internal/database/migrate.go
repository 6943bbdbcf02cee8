package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pcoshealth/pcos-assistant/backend/internal/models"
)

// Migrate applies the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.SavedDietPlan{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
