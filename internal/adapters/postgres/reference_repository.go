package postgres_adapter

import (
	"context"
	"fmt"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferenceRepository serves the location and categorization dictionaries.
// The tables are small and read-mostly; no caching layer is needed in
// front of them.
type ReferenceRepository struct {
	pool *pgxpool.Pool
}

func NewReferenceRepository(pool *pgxpool.Pool) (*ReferenceRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ReferenceRepository{pool: pool}, nil
}

func (r *ReferenceRepository) Cities(ctx context.Context) ([]domain.City, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ReferenceRepository",
		"method":    "Cities",
	})

	query := `SELECT id, name_ar, name_en, name_tr FROM cities ORDER BY name_en`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query cities", err, nil)
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name.AR, &c.Name.EN, &c.Name.TR); err != nil {
			repoLogger.Error("Failed to scan city row", err, nil)
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *ReferenceRepository) Districts(ctx context.Context) ([]domain.District, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ReferenceRepository",
		"method":    "Districts",
	})

	query := `SELECT id, city_id, name_ar, name_en, name_tr FROM districts ORDER BY name_en`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query districts", err, nil)
		return nil, fmt.Errorf("failed to query districts: %w", err)
	}
	defer rows.Close()

	districts := make([]domain.District, 0)
	for rows.Next() {
		var d domain.District
		if err := rows.Scan(&d.ID, &d.CityID, &d.Name.AR, &d.Name.EN, &d.Name.TR); err != nil {
			repoLogger.Error("Failed to scan district row", err, nil)
			return nil, fmt.Errorf("failed to scan district row: %w", err)
		}
		districts = append(districts, d)
	}
	return districts, rows.Err()
}

func (r *ReferenceRepository) PropertyTypes(ctx context.Context) ([]domain.PropertyType, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ReferenceRepository",
		"method":    "PropertyTypes",
	})

	query := `SELECT id, name_ar, name_en, name_tr FROM property_types ORDER BY name_en`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query property types", err, nil)
		return nil, fmt.Errorf("failed to query property types: %w", err)
	}
	defer rows.Close()

	types := make([]domain.PropertyType, 0)
	for rows.Next() {
		var t domain.PropertyType
		if err := rows.Scan(&t.ID, &t.Name.AR, &t.Name.EN, &t.Name.TR); err != nil {
			repoLogger.Error("Failed to scan property type row", err, nil)
			return nil, fmt.Errorf("failed to scan property type row: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *ReferenceRepository) PropertyLayouts(ctx context.Context) ([]domain.PropertyLayout, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ReferenceRepository",
		"method":    "PropertyLayouts",
	})

	query := `SELECT id, property_type_id, name_ar, name_en, name_tr FROM property_layouts ORDER BY name_en`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query property layouts", err, nil)
		return nil, fmt.Errorf("failed to query property layouts: %w", err)
	}
	defer rows.Close()

	layouts := make([]domain.PropertyLayout, 0)
	for rows.Next() {
		var l domain.PropertyLayout
		if err := rows.Scan(&l.ID, &l.PropertyTypeID, &l.Name.AR, &l.Name.EN, &l.Name.TR); err != nil {
			repoLogger.Error("Failed to scan property layout row", err, nil)
			return nil, fmt.Errorf("failed to scan property layout row: %w", err)
		}
		layouts = append(layouts, l)
	}
	return layouts, rows.Err()
}
