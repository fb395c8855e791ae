package rabbitmq

import (
	"context"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
)

// NoopDomainEvents satisfies the events port when no broker is configured.
// Single-node deployments run without RabbitMQ entirely.
type NoopDomainEvents struct{}

func NewNoopDomainEvents() *NoopDomainEvents {
	return &NoopDomainEvents{}
}

func (n *NoopDomainEvents) PublishPropertyUpserted(ctx context.Context, property *domain.Property) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, dropping property.upserted", nil)
	return nil
}

func (n *NoopDomainEvents) PublishUserSuspended(ctx context.Context, user *domain.User) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, dropping user.suspended", nil)
	return nil
}
