package domain

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// SortKey - the admin list can be ordered by one of these columns.
type SortKey string

const (
	SortByCreatedAt SortKey = "created_at"
	SortByTitle     SortKey = "title"
	SortByPrice     SortKey = "price"
	SortByViews     SortKey = "views_count"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchFilters - the transient filter state of one search request. Zero
// values mean "all": a nil uuid matches every city, an empty listing type
// matches both sale and rent, and so on. Never persisted.
type SearchFilters struct {
	CityID           uuid.UUID
	DistrictID       uuid.UUID
	PropertyTypeID   uuid.UUID
	PropertyLayoutID uuid.UUID
	ListingType      ListingType
	Status           PropertyStatus
	OwnerID          uuid.UUID // admin list only: narrow to one owner
	PriceMin         *float64
	PriceMax         *float64
	Query            string

	SortBy    SortKey
	SortOrder SortOrder

	Lang Lang
}

// Predicate decides whether one property satisfies a filter condition.
// Combinators below build predicates for each rule; And conjoins them so
// every rule has exactly one implementation regardless of call site.
type Predicate func(*Property) bool

// And combines predicates; a property must satisfy every one.
func And(predicates ...Predicate) Predicate {
	return func(p *Property) bool {
		for _, match := range predicates {
			if !match(p) {
				return false
			}
		}
		return true
	}
}

// Filter returns the subset of properties matching the predicate,
// preserving input order. Pure: same input, same output.
func Filter(properties []Property, match Predicate) []Property {
	result := make([]Property, 0, len(properties))
	for i := range properties {
		if match(&properties[i]) {
			result = append(result, properties[i])
		}
	}
	return result
}

// ByCity matches properties in the given city; uuid.Nil matches all.
func ByCity(cityID uuid.UUID) Predicate {
	return func(p *Property) bool {
		return cityID == uuid.Nil || p.CityID == cityID
	}
}

func ByDistrict(districtID uuid.UUID) Predicate {
	return func(p *Property) bool {
		return districtID == uuid.Nil || p.DistrictID == districtID
	}
}

func ByPropertyType(typeID uuid.UUID) Predicate {
	return func(p *Property) bool {
		return typeID == uuid.Nil || p.PropertyTypeID == typeID
	}
}

func ByLayout(layoutID uuid.UUID) Predicate {
	return func(p *Property) bool {
		return layoutID == uuid.Nil || p.PropertyLayoutID == layoutID
	}
}

// ByListingType matches sale/rent listings; an empty value matches all.
func ByListingType(lt ListingType) Predicate {
	return func(p *Property) bool {
		return lt == "" || p.ListingType == lt
	}
}

// ByStatus matches one specific status; an empty value matches all.
func ByStatus(status PropertyStatus) Predicate {
	return func(p *Property) bool {
		return status == "" || p.Status == status
	}
}

// ByPriceRange matches prices within [min, max]; nil bounds are open.
func ByPriceRange(min, max *float64) Predicate {
	return func(p *Property) bool {
		if min != nil && p.Price < *min {
			return false
		}
		if max != nil && p.Price > *max {
			return false
		}
		return true
	}
}

// TextIndex resolves location ids to their localized names so free-text
// search can match against city and district strings. Built once per
// request from the reference lists.
type TextIndex struct {
	cityNames     map[uuid.UUID][]string
	districtNames map[uuid.UUID][]string
}

func NewTextIndex(cities []City, districts []District) *TextIndex {
	index := &TextIndex{
		cityNames:     make(map[uuid.UUID][]string, len(cities)),
		districtNames: make(map[uuid.UUID][]string, len(districts)),
	}
	for _, c := range cities {
		index.cityNames[c.ID] = localizedVariants(c.Name)
	}
	for _, d := range districts {
		index.districtNames[d.ID] = localizedVariants(d.Name)
	}
	return index
}

func localizedVariants(t LocalizedText) []string {
	var names []string
	for _, s := range []string{t.AR, t.EN, t.TR} {
		if s != "" {
			names = append(names, s)
		}
	}
	return names
}

// ByText matches when the search term appears, case-insensitively, in any
// localized title, the legacy title, or the property's city/district names.
// An empty query matches everything.
func ByText(query string, index *TextIndex) Predicate {
	term := strings.ToLower(strings.TrimSpace(query))
	return func(p *Property) bool {
		if term == "" {
			return true
		}
		for _, s := range []string{p.Title.AR, p.Title.EN, p.Title.TR, p.LegacyTitle} {
			if s != "" && strings.Contains(strings.ToLower(s), term) {
				return true
			}
		}
		if index == nil {
			return false
		}
		for _, name := range index.cityNames[p.CityID] {
			if strings.Contains(strings.ToLower(name), term) {
				return true
			}
		}
		for _, name := range index.districtNames[p.DistrictID] {
			if strings.Contains(strings.ToLower(name), term) {
				return true
			}
		}
		return false
	}
}

// SortProperties orders the slice in place. The sort is stable so listings
// with equal keys keep their relative order. Missing values (empty title,
// zero price/views) sort to one deterministic end rather than erroring.
func SortProperties(properties []Property, key SortKey, order SortOrder) {
	desc := order == SortDesc
	less := func(a, b *Property) bool { return a.CreatedAt.Before(b.CreatedAt) }
	switch key {
	case SortByTitle:
		less = func(a, b *Property) bool {
			return strings.ToLower(a.DisplayTitle(LangEN)) < strings.ToLower(b.DisplayTitle(LangEN))
		}
	case SortByPrice:
		less = func(a, b *Property) bool { return a.Price < b.Price }
	case SortByViews:
		less = func(a, b *Property) bool { return a.ViewsCount < b.ViewsCount }
	}
	sort.SliceStable(properties, func(i, j int) bool {
		if desc {
			return less(&properties[j], &properties[i])
		}
		return less(&properties[i], &properties[j])
	})
}

// Paginate slices a filtered result; out-of-range offsets yield an empty
// page, never an error.
func Paginate(properties []Property, limit, offset int) []Property {
	if offset >= len(properties) || offset < 0 {
		return []Property{}
	}
	end := offset + limit
	if limit <= 0 || end > len(properties) {
		end = len(properties)
	}
	return properties[offset:end]
}
