package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepository stores the single site settings row. The table is
// keyed by a constant id so upserts always hit the same row.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) (*SettingsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SettingsRepository{pool: pool}, nil
}

// Get returns (nil, nil) when the settings row has never been written.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SettingsRepository",
		"method":    "Get",
	})

	query := `
		SELECT site_name_ar, site_name_en, site_name_tr,
		       logo_url, contact_email, contact_phone,
		       default_language, updated_at
		FROM site_settings WHERE id = 1`

	var s domain.SiteSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.SiteName.AR, &s.SiteName.EN, &s.SiteName.TR,
		&s.LogoURL, &s.ContactEmail, &s.ContactPhone,
		&s.DefaultLanguage, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Site settings not configured yet.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to load site settings", err, nil)
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, settings *domain.SiteSettings) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SettingsRepository",
		"method":    "Update",
	})

	query := `
		INSERT INTO site_settings (
			id, site_name_ar, site_name_en, site_name_tr,
			logo_url, contact_email, contact_phone,
			default_language, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			site_name_ar = EXCLUDED.site_name_ar,
			site_name_en = EXCLUDED.site_name_en,
			site_name_tr = EXCLUDED.site_name_tr,
			logo_url = EXCLUDED.logo_url,
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			default_language = EXCLUDED.default_language,
			updated_at = EXCLUDED.updated_at`

	repoLogger.Debug("Executing query to update site settings.", nil)
	_, err := r.pool.Exec(ctx, query,
		settings.SiteName.AR, settings.SiteName.EN, settings.SiteName.TR,
		settings.LogoURL, settings.ContactEmail, settings.ContactPhone,
		settings.DefaultLanguage, settings.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update site settings", err, nil)
		return fmt.Errorf("failed to update site settings: %w", err)
	}

	repoLogger.Debug("Site settings updated successfully.", nil)
	return nil
}
