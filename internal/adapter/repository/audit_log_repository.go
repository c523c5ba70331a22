package repository

import (
	"context"
	"fmt"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAuditLogRepository creates the gorm-backed audit trail.
func NewAuditLogRepository(db *gorm.DB, logger *zap.Logger) repository.AuditLogRepository {
	return &auditLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		r.logger.Error("failed to write audit log",
			zap.String("type", string(entry.Type)),
			zap.Error(err))
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
