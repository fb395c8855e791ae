package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type GetSiteSettingsUseCase interface {
	Execute(ctx context.Context) (*domain.SiteSettings, error)
}

type UpdateSiteSettingsUseCase interface {
	Execute(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error)
}
