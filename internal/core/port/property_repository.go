package port

import (
	"context"
	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyRepositoryPort - persistence boundary for listings. Filtering,
// sorting and pagination are composed in memory by the use cases; the
// repository only narrows by visibility or ownership.
type PropertyRepositoryPort interface {
	Save(ctx context.Context, property *domain.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// FindVisible returns every publicly visible listing (pending and
	// hidden excluded), newest first.
	FindVisible(ctx context.Context) ([]domain.Property, error)
	// FindAll returns every listing regardless of status; ownerID other
	// than uuid.Nil narrows to one owner's listings.
	FindAll(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error)

	IncrementViews(ctx context.Context, id uuid.UUID) error
}
