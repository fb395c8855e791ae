package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters, selection *domain.PriceBounds) (*domain.FilterOptionsResult, error)
}
