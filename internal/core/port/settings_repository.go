package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// SiteSettingsPort - persistence boundary for the site settings row.
type SiteSettingsPort interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, settings *domain.SiteSettings) error
}
