package database

import (
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.User{},
		&model.Attendance{},
		&model.AuditLog{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes GORM's tag syntax doesn't cover.
func createCustomIndexes(db *gorm.DB) error {
	// Partial index for accounts currently under a lockout window.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_users_locked ON users (account_locked_until) WHERE account_locked_until IS NOT NULL`).Error; err != nil {
		return err
	}

	// Reporting queries group attendance by date and status.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_attendances_date_status ON attendances (date, status)`).Error; err != nil {
		return err
	}

	return nil
}
