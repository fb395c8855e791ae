package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"
)

// geohashPrecision of 7 gives a cell of roughly 150m, enough for
// neighborhood-level map clustering.
const geohashPrecision = 7

const propertyColumns = `
	id, owner_id,
	title_ar, title_en, title_tr,
	description_ar, description_en, description_tr,
	legacy_title,
	price, currency, listing_type, status,
	city_id, district_id, property_type_id, property_layout_id,
	bedrooms, bathrooms, area,
	is_featured, images, cover_image, views_count,
	latitude, longitude,
	created_at, updated_at`

// PropertyRepository - PostgreSQL implementation of PropertyRepositoryPort.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

// Save upserts a listing. The geohash column is derived from the
// coordinates here so every write path keeps it consistent.
func (r *PropertyRepository) Save(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Save",
		"property_id": property.ID.String(),
	})

	var geo *string
	if property.Latitude != nil && property.Longitude != nil {
		hash := geohash.EncodeWithPrecision(*property.Latitude, *property.Longitude, geohashPrecision)
		geo = &hash
	}

	query := `
		INSERT INTO properties (
			id, owner_id,
			title_ar, title_en, title_tr,
			description_ar, description_en, description_tr,
			legacy_title,
			price, currency, listing_type, status,
			city_id, district_id, property_type_id, property_layout_id,
			bedrooms, bathrooms, area,
			is_featured, images, cover_image, views_count,
			latitude, longitude, geohash,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29
		)
		ON CONFLICT (id) DO UPDATE SET
			title_ar = EXCLUDED.title_ar,
			title_en = EXCLUDED.title_en,
			title_tr = EXCLUDED.title_tr,
			description_ar = EXCLUDED.description_ar,
			description_en = EXCLUDED.description_en,
			description_tr = EXCLUDED.description_tr,
			legacy_title = EXCLUDED.legacy_title,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			listing_type = EXCLUDED.listing_type,
			status = EXCLUDED.status,
			city_id = EXCLUDED.city_id,
			district_id = EXCLUDED.district_id,
			property_type_id = EXCLUDED.property_type_id,
			property_layout_id = EXCLUDED.property_layout_id,
			bedrooms = EXCLUDED.bedrooms,
			bathrooms = EXCLUDED.bathrooms,
			area = EXCLUDED.area,
			is_featured = EXCLUDED.is_featured,
			images = EXCLUDED.images,
			cover_image = EXCLUDED.cover_image,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			geohash = EXCLUDED.geohash,
			updated_at = EXCLUDED.updated_at`

	repoLogger.Debug("Executing query to save property.", nil)
	_, err := r.pool.Exec(ctx, query,
		property.ID, property.OwnerID,
		property.Title.AR, property.Title.EN, property.Title.TR,
		property.Description.AR, property.Description.EN, property.Description.TR,
		property.LegacyTitle,
		property.Price, property.Currency, property.ListingType, property.Status,
		property.CityID, nullableUUID(property.DistrictID), nullableUUID(property.PropertyTypeID), nullableUUID(property.PropertyLayoutID),
		property.Bedrooms, property.Bathrooms, property.Area,
		property.IsFeatured, property.Images, property.CoverImage, property.ViewsCount,
		property.Latitude, property.Longitude, geo,
		property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to save property", err, nil)
		return fmt.Errorf("failed to save property: %w", err)
	}

	repoLogger.Debug("Property saved successfully.", nil)
	return nil
}

// FindByID returns (nil, nil) when no listing matches.
func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "FindByID",
		"property_id": id.String(),
	})

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	repoLogger.Debug("Executing query to find property by ID.", nil)
	row := r.pool.QueryRow(ctx, query, id)
	property, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Property not found by ID.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find property by ID", err, nil)
		return nil, fmt.Errorf("failed to find property by id: %w", err)
	}

	return property, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Delete",
		"property_id": id.String(),
	})

	repoLogger.Debug("Executing query to delete property.", nil)
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete property", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		repoLogger.Warn("Delete affected no rows.", nil)
		return domain.ErrPropertyNotFound
	}

	repoLogger.Debug("Property deleted successfully.", nil)
	return nil
}

// FindVisible returns every publicly visible listing, newest first.
func (r *PropertyRepository) FindVisible(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "FindVisible",
	})

	qb := newQueryBuilder()
	qb.addRawCondition("status NOT IN ('pending', 'hidden')")
	whereClause, args := qb.build()

	query := fmt.Sprintf(
		`SELECT %s FROM properties %s ORDER BY created_at DESC`,
		propertyColumns, whereClause,
	)

	repoLogger.Debug("Executing query to find visible properties.", nil)
	return r.queryProperties(ctx, repoLogger, query, args)
}

// FindAll returns every listing regardless of status; a non-nil ownerID
// narrows to that owner.
func (r *PropertyRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "FindAll",
	})

	qb := newQueryBuilder()
	if ownerID != uuid.Nil {
		qb.addCondition("%s = $%d", "owner_id", ownerID)
	}
	whereClause, args := qb.build()

	query := fmt.Sprintf(
		`SELECT %s FROM properties %s ORDER BY created_at DESC`,
		propertyColumns, whereClause,
	)

	repoLogger.Debug("Executing query to find all properties.", nil)
	return r.queryProperties(ctx, repoLogger, query, args)
}

// IncrementViews bumps the view counter without touching updated_at.
func (r *PropertyRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE properties SET views_count = views_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

func (r *PropertyRepository) queryProperties(ctx context.Context, repoLogger port.LoggerPort, query string, args []interface{}) ([]domain.Property, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, nil)
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *property)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Row iteration failed", err, nil)
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	repoLogger.Debug("Properties loaded.", port.Fields{"count": len(properties)})
	return properties, nil
}

// scanProperty reads one row in propertyColumns order. Nullable uuid
// references come back as pointers and collapse to uuid.Nil.
func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	var districtID, propertyTypeID, propertyLayoutID *uuid.UUID

	err := row.Scan(
		&p.ID, &p.OwnerID,
		&p.Title.AR, &p.Title.EN, &p.Title.TR,
		&p.Description.AR, &p.Description.EN, &p.Description.TR,
		&p.LegacyTitle,
		&p.Price, &p.Currency, &p.ListingType, &p.Status,
		&p.CityID, &districtID, &propertyTypeID, &propertyLayoutID,
		&p.Bedrooms, &p.Bathrooms, &p.Area,
		&p.IsFeatured, &p.Images, &p.CoverImage, &p.ViewsCount,
		&p.Latitude, &p.Longitude,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if districtID != nil {
		p.DistrictID = *districtID
	}
	if propertyTypeID != nil {
		p.PropertyTypeID = *propertyTypeID
	}
	if propertyLayoutID != nil {
		p.PropertyLayoutID = *propertyLayoutID
	}
	return &p, nil
}

// nullableUUID maps uuid.Nil to SQL NULL for optional references.
func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
