package rest

import (
	"net/http"
	"strconv"

	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

// langFromRequest resolves the response language from the lang query
// parameter, falling back to the Accept-Language header.
func langFromRequest(r *http.Request) domain.Lang {
	if hint := r.URL.Query().Get("lang"); hint != "" {
		return domain.ParseLang(hint)
	}
	return domain.ParseLang(r.Header.Get("Accept-Language"))
}

func uuidParam(r *http.Request, name string) uuid.UUID {
	id, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func floatParam(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

// parseSearchFilters reads the filter state from query parameters.
// Unparseable values degrade to "no filter" rather than erroring, so a
// stale UI never breaks the search page.
func parseSearchFilters(r *http.Request) domain.SearchFilters {
	q := r.URL.Query()

	return domain.SearchFilters{
		CityID:           uuidParam(r, "city_id"),
		DistrictID:       uuidParam(r, "district_id"),
		PropertyTypeID:   uuidParam(r, "property_type_id"),
		PropertyLayoutID: uuidParam(r, "property_layout_id"),
		ListingType:      domain.ListingType(q.Get("listing_type")),
		Status:           domain.PropertyStatus(q.Get("status")),
		PriceMin:         floatParam(r, "price_min"),
		PriceMax:         floatParam(r, "price_max"),
		Query:            q.Get("q"),
		SortBy:           domain.SortKey(q.Get("sort_by")),
		SortOrder:        domain.SortOrder(q.Get("sort_order")),
		Lang:             langFromRequest(r),
	}
}
