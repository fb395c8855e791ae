package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

type AdminListPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters, limit, offset int) (*domain.PaginatedResult, error)
}

type UpdatePropertyStatusUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID, status domain.PropertyStatus) (*domain.Property, error)
}

type FeaturePropertyUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID, featured bool) (*domain.Property, error)
}
