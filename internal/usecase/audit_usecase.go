package usecase

import (
	"context"
	"encoding/json"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/domain/repository"
	"go.uber.org/zap"
)

// AuditPublisher fans audit events out to interested consumers (dashboards,
// alerting). Publishing is best-effort; the database row is the record.
type AuditPublisher interface {
	Publish(ctx context.Context, entry *model.AuditLog) error
}

// AuditUseCase writes the server-side security trail.
type AuditUseCase struct {
	logger    *zap.Logger
	auditRepo repository.AuditLogRepository
	publisher AuditPublisher
}

// NewAuditUseCase creates the audit recorder. publisher may be nil.
func NewAuditUseCase(logger *zap.Logger, auditRepo repository.AuditLogRepository, publisher AuditPublisher) *AuditUseCase {
	return &AuditUseCase{
		logger:    logger,
		auditRepo: auditRepo,
		publisher: publisher,
	}
}

// Record persists an audit entry and publishes it. Failures are logged and
// swallowed so auditing never fails the request that triggered it.
func (uc *AuditUseCase) Record(ctx context.Context, logType model.AuditLogType, email string, userID *string, ip, userAgent string, detail map[string]interface{}) {
	entry := &model.AuditLog{
		Type:      logType,
		Email:     email,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
	}

	if len(detail) > 0 {
		payload, err := json.Marshal(detail)
		if err != nil {
			uc.logger.Warn("failed to encode audit detail", zap.Error(err))
		} else {
			entry.Detail = payload
		}
	}

	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.logger.Error("failed to persist audit log",
			zap.String("type", string(logType)),
			zap.Error(err))
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, entry); err != nil {
			uc.logger.Warn("failed to publish audit event",
				zap.String("type", string(logType)),
				zap.Error(err))
		}
	}
}
