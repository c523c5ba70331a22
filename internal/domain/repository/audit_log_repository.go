package repository

import (
	"context"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
)

type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
}
