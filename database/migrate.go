package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"healthdesk/internal/models"
)

func MigrateDatabase(db *gorm.DB, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	if err := db.AutoMigrate(&models.PatientRow{}); err != nil {
		return fmt.Errorf("migrate patients: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}
