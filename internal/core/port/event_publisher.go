package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// DomainEventsPort publishes integration events for other systems
// (notification senders, search indexers). Publishing is best-effort:
// use cases log failures but never fail the request over them.
type DomainEventsPort interface {
	PublishPropertyUpserted(ctx context.Context, property *domain.Property) error
	PublishUserSuspended(ctx context.Context, user *domain.User) error
}
