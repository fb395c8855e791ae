package domain

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Lang is one of the three display languages of the platform.
type Lang string

const (
	LangAR Lang = "ar"
	LangEN Lang = "en"
	LangTR Lang = "tr"
)

// DefaultLang is used whenever a request carries no usable language hint.
const DefaultLang = LangEN

var langMatcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Arabic,
	language.Turkish,
})

// ParseLang maps an incoming language hint (query param or a full
// Accept-Language header) onto one of the supported languages. Anything
// unrecognized falls back to English.
func ParseLang(hint string) Lang {
	if hint == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(hint)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, index, _ := langMatcher.Match(tags...)
	switch index {
	case 1:
		return LangAR
	case 2:
		return LangTR
	default:
		return LangEN
	}
}

// LocalizedText holds the three translations of a user-facing string.
type LocalizedText struct {
	AR string
	EN string
	TR string
}

// In returns the translation for lang, falling back to English when the
// requested translation is missing. Absent data is never an error.
func (t LocalizedText) In(lang Lang) string {
	var s string
	switch lang {
	case LangAR:
		s = t.AR
	case LangTR:
		s = t.TR
	default:
		s = t.EN
	}
	if s == "" {
		s = t.EN
	}
	return s
}

// IsEmpty reports whether no translation is present at all.
func (t LocalizedText) IsEmpty() bool {
	return t.AR == "" && t.EN == "" && t.TR == ""
}

// Option is a presentable (value, label) pair for a filter control.
type Option struct {
	Value uuid.UUID
	Label string
}

// CityOptions localizes the city reference list for display.
func CityOptions(cities []City, lang Lang) []Option {
	options := make([]Option, 0, len(cities))
	for _, c := range cities {
		options = append(options, Option{Value: c.ID, Label: c.Name.In(lang)})
	}
	return options
}

// DistrictsOfCity narrows the full district list to the districts of one
// city. A zero city id yields an empty list, never an error.
func DistrictsOfCity(districts []District, cityID uuid.UUID) []District {
	if cityID == uuid.Nil {
		return nil
	}
	var result []District
	for _, d := range districts {
		if d.CityID == cityID {
			result = append(result, d)
		}
	}
	return result
}

// DistrictOptions localizes the districts selectable for the given city.
func DistrictOptions(districts []District, cityID uuid.UUID, lang Lang) []Option {
	scoped := DistrictsOfCity(districts, cityID)
	options := make([]Option, 0, len(scoped))
	for _, d := range scoped {
		options = append(options, Option{Value: d.ID, Label: d.Name.In(lang)})
	}
	return options
}

// PropertyTypeOptions localizes the property type reference list.
func PropertyTypeOptions(types []PropertyType, lang Lang) []Option {
	options := make([]Option, 0, len(types))
	for _, t := range types {
		options = append(options, Option{Value: t.ID, Label: t.Name.In(lang)})
	}
	return options
}

// LayoutOptions localizes the layouts selectable once a property type is
// chosen. A zero type id yields an empty list.
func LayoutOptions(layouts []PropertyLayout, typeID uuid.UUID, lang Lang) []Option {
	if typeID == uuid.Nil {
		return nil
	}
	var options []Option
	for _, l := range layouts {
		if l.PropertyTypeID == typeID {
			options = append(options, Option{Value: l.ID, Label: l.Name.In(lang)})
		}
	}
	return options
}
