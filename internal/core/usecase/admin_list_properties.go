package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

// AdminListPropertiesUseCase serves the back-office property table: every
// listing regardless of status, narrowed by the same predicate combinators
// the public search uses, then stably sorted. The price range is not
// applied here; in the back-office it only bounds the slider.
type AdminListPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
	refs       port.ReferenceDataPort
}

func NewAdminListPropertiesUseCase(properties port.PropertyRepositoryPort, refs port.ReferenceDataPort) *AdminListPropertiesUseCase {
	return &AdminListPropertiesUseCase{properties: properties, refs: refs}
}

func (uc *AdminListPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters, limit, offset int) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "AdminListProperties",
		"limit":    limit,
		"offset":   offset,
	})
	ucLogger.Info("Use case started", nil)

	all, err := uc.properties.FindAll(ctx, filters.OwnerID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	var index *domain.TextIndex
	cities, cErr := uc.refs.Cities(ctx)
	districts, dErr := uc.refs.Districts(ctx)
	if cErr == nil && dErr == nil {
		index = domain.NewTextIndex(cities, districts)
	} else if cErr != nil {
		ucLogger.Error("WARN: failed to load cities for text search", cErr, nil)
	} else {
		ucLogger.Error("WARN: failed to load districts for text search", dErr, nil)
	}

	matched := domain.Filter(all, domain.And(
		domain.ByCity(filters.CityID),
		domain.ByDistrict(filters.DistrictID),
		domain.ByPropertyType(filters.PropertyTypeID),
		domain.ByLayout(filters.PropertyLayoutID),
		domain.ByListingType(filters.ListingType),
		domain.ByStatus(filters.Status),
		domain.ByText(filters.Query, index),
	))

	sortBy := filters.SortBy
	sortOrder := filters.SortOrder
	if sortBy == "" {
		sortBy, sortOrder = domain.SortByCreatedAt, domain.SortDesc
	}
	domain.SortProperties(matched, sortBy, sortOrder)

	page := domain.Paginate(matched, limit, offset)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   len(matched),
		"items_on_page": len(page),
	})

	perPage := limit
	if perPage <= 0 {
		perPage = len(page)
	}
	currentPage := 1
	if perPage > 0 {
		currentPage = offset/perPage + 1
	}
	return &domain.PaginatedResult{
		Properties:   page,
		TotalCount:   len(matched),
		CurrentPage:  currentPage,
		ItemsPerPage: perPage,
	}, nil
}
