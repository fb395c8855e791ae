package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type SearchPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters, limit, offset int) (*domain.PaginatedResult, error)
}
