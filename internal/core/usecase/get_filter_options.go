package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/google/uuid"
)

// GetFilterOptionsUseCase recomputes the search UI's presentation data
// after a filter change: the dynamic price bound over the matching set,
// the user's re-clamped price selection, and the district/layout options
// narrowed by the selected city and type.
type GetFilterOptionsUseCase struct {
	properties port.PropertyRepositoryPort
	refs       port.ReferenceDataPort
}

func NewGetFilterOptionsUseCase(properties port.PropertyRepositoryPort, refs port.ReferenceDataPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{properties: properties, refs: refs}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context, filters domain.SearchFilters, selection *domain.PriceBounds) (*domain.FilterOptionsResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})
	ucLogger.Info("Use case started", nil)

	visible, err := uc.properties.FindVisible(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	// The price bound is derived from the set matching every filter except
	// price itself, so the slider always covers the real listing prices.
	matched := domain.Filter(visible, domain.And(
		domain.ByCity(filters.CityID),
		domain.ByDistrict(filters.DistrictID),
		domain.ByPropertyType(filters.PropertyTypeID),
		domain.ByLayout(filters.PropertyLayoutID),
		domain.ByListingType(filters.ListingType),
		domain.ByStatus(filters.Status),
	))

	bounds := domain.DerivePriceBounds(matched, domain.DefaultPriceBounds)
	selected := bounds
	if selection != nil {
		selected = domain.ClampSelection(*selection, bounds)
	}

	result := &domain.FilterOptionsResult{
		PriceBounds:    bounds,
		PriceSelection: selected,
		Count:          len(matched),
	}

	if filters.CityID != uuid.Nil {
		districts, err := uc.refs.Districts(ctx)
		if err != nil {
			ucLogger.Error("WARN: failed to get districts", err, nil)
		} else {
			result.Districts = domain.DistrictOptions(districts, filters.CityID, filters.Lang)
		}
	}

	if filters.PropertyTypeID != uuid.Nil {
		layouts, err := uc.refs.PropertyLayouts(ctx)
		if err != nil {
			ucLogger.Error("WARN: failed to get layouts", err, nil)
		} else {
			result.Layouts = domain.LayoutOptions(layouts, filters.PropertyTypeID, filters.Lang)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"count":     result.Count,
		"price_min": bounds.Min,
		"price_max": bounds.Max,
	})
	return result, nil
}
