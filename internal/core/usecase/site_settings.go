package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"
)

// GetSiteSettingsUseCase serves the public site configuration.
type GetSiteSettingsUseCase struct {
	settings port.SiteSettingsPort
}

func NewGetSiteSettingsUseCase(settings port.SiteSettingsPort) *GetSiteSettingsUseCase {
	return &GetSiteSettingsUseCase{settings: settings}
}

func (uc *GetSiteSettingsUseCase) Execute(ctx context.Context) (*domain.SiteSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		logger.Error("Repository failed to load site settings", err, port.Fields{"use_case": "GetSiteSettings"})
		return nil, err
	}
	if settings == nil {
		// Nothing configured yet; serve a sane default instead of a 404.
		return &domain.SiteSettings{DefaultLanguage: domain.DefaultLang}, nil
	}
	return settings, nil
}

// UpdateSiteSettingsUseCase applies a back-office change to the site
// appearance configuration.
type UpdateSiteSettingsUseCase struct {
	settings port.SiteSettingsPort
}

func NewUpdateSiteSettingsUseCase(settings port.SiteSettingsPort) *UpdateSiteSettingsUseCase {
	return &UpdateSiteSettingsUseCase{settings: settings}
}

func (uc *UpdateSiteSettingsUseCase) Execute(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateSiteSettings",
	})
	ucLogger.Info("Use case started", nil)

	if settings.SiteName.IsEmpty() {
		return nil, fmt.Errorf("%w: site name is required in at least one language", domain.ErrValidation)
	}
	switch settings.DefaultLanguage {
	case domain.LangAR, domain.LangEN, domain.LangTR:
	default:
		return nil, fmt.Errorf("%w: unsupported default language %q", domain.ErrValidation, settings.DefaultLanguage)
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := uc.settings.Update(ctx, settings); err != nil {
		ucLogger.Error("Repository failed to update site settings", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return settings, nil
}
