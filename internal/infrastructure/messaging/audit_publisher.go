package messaging

import (
	"context"
	"fmt"

	"github.com/Prashgeek/attendance-tracking-system/internal/domain/model"
	"github.com/Prashgeek/attendance-tracking-system/internal/usecase"
)

type redisAuditPublisher struct {
	redisClient RedisClient
	channel     string
}

// NewRedisAuditPublisher publishes audit events to a Redis channel so
// security dashboards can follow lockouts and resets in real time.
func NewRedisAuditPublisher(client RedisClient, channel string) usecase.AuditPublisher {
	return &redisAuditPublisher{
		redisClient: client,
		channel:     channel,
	}
}

func (p *redisAuditPublisher) Publish(ctx context.Context, entry *model.AuditLog) error {
	if entry == nil {
		return fmt.Errorf("audit entry is nil")
	}

	if err := p.redisClient.Publish(ctx, p.channel, entry); err != nil {
		return fmt.Errorf("failed to publish audit event: %w", err)
	}

	return nil
}
