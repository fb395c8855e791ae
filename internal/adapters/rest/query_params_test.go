package rest

import (
	"net/http/httptest"
	"testing"

	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

func TestLangFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   domain.Lang
	}{
		{"lang parameter wins", "/api/v1/properties?lang=ar", "tr-TR,tr;q=0.9", domain.LangAR},
		{"header fallback", "/api/v1/properties", "tr-TR,tr;q=0.9", domain.LangTR},
		{"nothing defaults to english", "/api/v1/properties", "", domain.LangEN},
		{"unknown language defaults to english", "/api/v1/properties?lang=fr", "", domain.LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				r.Header.Set("Accept-Language", tt.header)
			}
			if got := langFromRequest(r); got != tt.want {
				t.Errorf("langFromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSearchFilters(t *testing.T) {
	city := uuid.New()

	r := httptest.NewRequest("GET",
		"/api/v1/properties?city_id="+city.String()+
			"&listing_type=sale&status=available&price_min=100&price_max=500"+
			"&q=seaview&sort_by=price&sort_order=asc&lang=tr", nil)

	filters := parseSearchFilters(r)

	if filters.CityID != city {
		t.Errorf("CityID = %v, want %v", filters.CityID, city)
	}
	if filters.ListingType != domain.ListingTypeSale || filters.Status != domain.StatusAvailable {
		t.Errorf("listing type/status not parsed: %+v", filters)
	}
	if filters.PriceMin == nil || *filters.PriceMin != 100 || filters.PriceMax == nil || *filters.PriceMax != 500 {
		t.Errorf("price range not parsed: min=%v max=%v", filters.PriceMin, filters.PriceMax)
	}
	if filters.Query != "seaview" {
		t.Errorf("Query = %q, want seaview", filters.Query)
	}
	if filters.SortBy != domain.SortByPrice || filters.SortOrder != domain.SortAsc {
		t.Errorf("sort not parsed: %q %q", filters.SortBy, filters.SortOrder)
	}
	if filters.Lang != domain.LangTR {
		t.Errorf("Lang = %q, want tr", filters.Lang)
	}
}

func TestParseSearchFiltersDegradesQuietly(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/v1/properties?city_id=not-a-uuid&price_min=cheap", nil)

	filters := parseSearchFilters(r)

	if filters.CityID != uuid.Nil {
		t.Errorf("an unparseable city id must mean no city filter, got %v", filters.CityID)
	}
	if filters.PriceMin != nil {
		t.Errorf("an unparseable price must mean no price filter, got %v", *filters.PriceMin)
	}
}
