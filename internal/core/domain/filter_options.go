package domain

// FilterOptionsResult - everything the search UI needs to (re)render its
// controls after a filter change: the derived price bound, the user's
// re-clamped selection, the narrowed district/layout options, and the
// total number of matching listings.
type FilterOptionsResult struct {
	PriceBounds    PriceBounds
	PriceSelection PriceBounds
	Districts      []Option
	Layouts        []Option
	Count          int
}

// Dictionaries - localized reference lists keyed by dictionary name
// (cities, districts, property_types, property_layouts).
type Dictionaries map[string][]Option
