package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// ReferenceDataPort serves the location and categorization dictionaries.
type ReferenceDataPort interface {
	Cities(ctx context.Context) ([]domain.City, error)
	Districts(ctx context.Context) ([]domain.District, error)
	PropertyTypes(ctx context.Context) ([]domain.PropertyType, error)
	PropertyLayouts(ctx context.Context) ([]domain.PropertyLayout, error)
}
