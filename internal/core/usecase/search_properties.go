package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

// SearchPropertiesUseCase serves the public search: it loads the publicly
// visible listings, composes the active filters into a single predicate,
// sorts and paginates. The price range filter is applied here; the admin
// list deliberately leaves it out (it only drives the slider bounds there).
type SearchPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
	refs       port.ReferenceDataPort
}

func NewSearchPropertiesUseCase(properties port.PropertyRepositoryPort, refs port.ReferenceDataPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{properties: properties, refs: refs}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters, limit, offset int) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"limit":    limit,
		"offset":   offset,
	})
	ucLogger.Info("Use case started", nil)

	visible, err := uc.properties.FindVisible(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	index, err := uc.buildTextIndex(ctx)
	if err != nil {
		// Free-text search degrades to title-only matching; not fatal.
		ucLogger.Error("WARN: failed to load reference data for text search", err, nil)
	}

	matched := domain.Filter(visible, domain.And(
		domain.ByCity(filters.CityID),
		domain.ByDistrict(filters.DistrictID),
		domain.ByPropertyType(filters.PropertyTypeID),
		domain.ByLayout(filters.PropertyLayoutID),
		domain.ByListingType(filters.ListingType),
		domain.ByStatus(filters.Status),
		domain.ByPriceRange(filters.PriceMin, filters.PriceMax),
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

func (uc *SearchPropertiesUseCase) buildTextIndex(ctx context.Context) (*domain.TextIndex, error) {
	cities, err := uc.refs.Cities(ctx)
	if err != nil {
		return nil, err
	}
	districts, err := uc.refs.Districts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewTextIndex(cities, districts), nil
}
