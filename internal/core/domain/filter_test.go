package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFilterIsPureAndOrderPreserving(t *testing.T) {
	city := uuid.New()
	properties := []Property{
		{ID: uuid.New(), CityID: city, Price: 100},
		{ID: uuid.New(), CityID: uuid.New(), Price: 200},
		{ID: uuid.New(), CityID: city, Price: 300},
	}

	match := ByCity(city)

	first := Filter(properties, match)
	second := Filter(properties, match)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 matches, got %d and %d", len(first), len(second))
	}
	if first[0].ID != properties[0].ID || first[1].ID != properties[2].ID {
		t.Errorf("filter did not preserve input order")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("filtering twice produced different results")
		}
	}
}

func TestAndRequiresEveryPredicate(t *testing.T) {
	city := uuid.New()
	p := Property{CityID: city, ListingType: ListingTypeSale, Price: 250}

	tests := []struct {
		name  string
		match Predicate
		want  bool
	}{
		{"all match", And(ByCity(city), ByListingType(ListingTypeSale)), true},
		{"one fails", And(ByCity(city), ByListingType(ListingTypeRent)), false},
		{"empty conjunction matches", And(), true},
		{"zero filters match everything", And(ByCity(uuid.Nil), ByListingType(""), ByStatus("")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.match(&p); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestByPriceRange(t *testing.T) {
	min := 100.0
	max := 500.0

	tests := []struct {
		name  string
		price float64
		min   *float64
		max   *float64
		want  bool
	}{
		{"inside", 250, &min, &max, true},
		{"on lower edge", 100, &min, &max, true},
		{"on upper edge", 500, &min, &max, true},
		{"below", 99.99, &min, &max, false},
		{"above", 500.01, &min, &max, false},
		{"open bounds match all", 1, nil, nil, true},
		{"only min", 50, &min, nil, false},
		{"only max", 600, nil, &max, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := ByPriceRange(tt.min, tt.max)
			if got := match(&Property{Price: tt.price}); got != tt.want {
				t.Errorf("ByPriceRange(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}

func TestByTextMatchesTitlesAndLocations(t *testing.T) {
	antalya := uuid.New()
	konyaalti := uuid.New()

	index := NewTextIndex(
		[]City{{ID: antalya, Name: LocalizedText{AR: "أنطاليا", EN: "Antalya", TR: "Antalya"}}},
		[]District{{ID: konyaalti, CityID: antalya, Name: LocalizedText{EN: "Konyaalti"}}},
	)

	property := Property{
		Title:      LocalizedText{EN: "Seaview apartment", TR: "Deniz manzarali daire"},
		CityID:     antalya,
		DistrictID: konyaalti,
	}

	tests := []struct {
		name  string
		query string
		index *TextIndex
		want  bool
	}{
		{"empty query matches", "", index, true},
		{"title substring", "seaview", index, true},
		{"title is case-insensitive", "SEAVIEW", index, true},
		{"turkish title", "manzarali", index, true},
		{"city name", "antalya", index, true},
		{"arabic city name", "أنطاليا", index, true},
		{"district name", "konyaalti", index, true},
		{"no match", "izmir", index, false},
		{"nil index still searches titles", "seaview", nil, true},
		{"nil index cannot match locations", "antalya", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := ByText(tt.query, tt.index)
			if got := match(&property); got != tt.want {
				t.Errorf("ByText(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestByTextSearchesLegacyTitle(t *testing.T) {
	property := Property{LegacyTitle: "Старая квартира в центре"}
	if !ByText("квартира", nil)(&property) {
		t.Errorf("legacy title should be searchable")
	}
}

func TestSortPropertiesStable(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	// Two listings share a price; stability must keep their input order.
	properties := []Property{
		{ID: first, Price: 200, CreatedAt: base},
		{ID: second, Price: 100, CreatedAt: base.Add(time.Hour)},
		{ID: third, Price: 200, CreatedAt: base.Add(2 * time.Hour)},
	}

	SortProperties(properties, SortByPrice, SortAsc)

	if properties[0].ID != second {
		t.Fatalf("cheapest listing should be first")
	}
	if properties[1].ID != first || properties[2].ID != third {
		t.Errorf("equal-price listings changed relative order")
	}
}

func TestSortPropertiesDirections(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	properties := []Property{
		{Title: LocalizedText{EN: "beta"}, Price: 300, ViewsCount: 5, CreatedAt: base.Add(time.Hour)},
		{Title: LocalizedText{EN: "Alpha"}, Price: 100, ViewsCount: 50, CreatedAt: base},
	}

	tests := []struct {
		name      string
		key       SortKey
		order     SortOrder
		wantFirst string
	}{
		{"created asc", SortByCreatedAt, SortAsc, "Alpha"},
		{"created desc", SortByCreatedAt, SortDesc, "beta"},
		{"title asc is case-insensitive", SortByTitle, SortAsc, "Alpha"},
		{"price desc", SortByPrice, SortDesc, "beta"},
		{"views desc", SortByViews, SortDesc, "Alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := make([]Property, len(properties))
			copy(props, properties)
			SortProperties(props, tt.key, tt.order)
			if got := props[0].Title.EN; got != tt.wantFirst {
				t.Errorf("first after sort = %q, want %q", got, tt.wantFirst)
			}
		})
	}
}

func TestSortPropertiesMissingTitles(t *testing.T) {
	properties := []Property{
		{Title: LocalizedText{EN: "Zebra house"}},
		{}, // no title at all sorts to the front ascending
		{Title: LocalizedText{EN: "Apartment"}},
	}

	SortProperties(properties, SortByTitle, SortAsc)

	if properties[0].Title.EN != "" {
		t.Errorf("untitled listing should sort first, got %q", properties[0].Title.EN)
	}
	if properties[1].Title.EN != "Apartment" || properties[2].Title.EN != "Zebra house" {
		t.Errorf("titled listings out of order: %q, %q", properties[1].Title.EN, properties[2].Title.EN)
	}
}

func TestPaginate(t *testing.T) {
	properties := make([]Property, 5)
	for i := range properties {
		properties[i].ViewsCount = i
	}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []int
	}{
		{"first page", 2, 0, []int{0, 1}},
		{"second page", 2, 2, []int{2, 3}},
		{"short last page", 2, 4, []int{4}},
		{"offset past the end", 2, 10, []int{}},
		{"negative offset", 2, -1, []int{}},
		{"zero limit returns the rest", 0, 1, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(properties, tt.limit, tt.offset)
			if len(page) != len(tt.want) {
				t.Fatalf("page size = %d, want %d", len(page), len(tt.want))
			}
			for i, views := range tt.want {
				if page[i].ViewsCount != views {
					t.Errorf("page[%d] = %d, want %d", i, page[i].ViewsCount, views)
				}
			}
		})
	}
}
