package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		hint string
		want Lang
	}{
		{"ar", LangAR},
		{"tr", LangTR},
		{"en", LangEN},
		{"ar-EG", LangAR},
		{"tr-TR", LangTR},
		{"en-US", LangEN},
		{"", LangEN},
		{"fr", LangEN},
		{"not-a-tag!!", LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			if got := ParseLang(tt.hint); got != tt.want {
				t.Errorf("ParseLang(%q) = %q, want %q", tt.hint, got, tt.want)
			}
		})
	}
}

func TestLocalizedTextIn(t *testing.T) {
	full := LocalizedText{AR: "شقة", EN: "Apartment", TR: "Daire"}
	partial := LocalizedText{EN: "Villa"}

	tests := []struct {
		name string
		text LocalizedText
		lang Lang
		want string
	}{
		{"arabic present", full, LangAR, "شقة"},
		{"turkish present", full, LangTR, "Daire"},
		{"english present", full, LangEN, "Apartment"},
		{"missing arabic falls back to english", partial, LangAR, "Villa"},
		{"missing turkish falls back to english", partial, LangTR, "Villa"},
		{"nothing present yields empty", LocalizedText{}, LangAR, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.In(tt.lang); got != tt.want {
				t.Errorf("In(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestDistrictOptionsNarrowByCity(t *testing.T) {
	antalya := uuid.New()
	istanbul := uuid.New()

	districts := []District{
		{ID: uuid.New(), CityID: antalya, Name: LocalizedText{EN: "Konyaalti"}},
		{ID: uuid.New(), CityID: antalya, Name: LocalizedText{EN: "Muratpasa"}},
		{ID: uuid.New(), CityID: istanbul, Name: LocalizedText{EN: "Kadikoy"}},
	}

	options := DistrictOptions(districts, antalya, LangEN)
	if len(options) != 2 {
		t.Fatalf("expected 2 districts for city, got %d", len(options))
	}
	for _, o := range options {
		if o.Label == "Kadikoy" {
			t.Errorf("district of another city leaked into options")
		}
	}

	if got := DistrictOptions(districts, uuid.Nil, LangEN); len(got) != 0 {
		t.Errorf("expected no districts without a city, got %d", len(got))
	}
}

func TestLayoutOptionsScopedToType(t *testing.T) {
	apartment := uuid.New()
	villa := uuid.New()

	layouts := []PropertyLayout{
		{ID: uuid.New(), PropertyTypeID: apartment, Name: LocalizedText{EN: "1+1"}},
		{ID: uuid.New(), PropertyTypeID: apartment, Name: LocalizedText{EN: "2+1"}},
		{ID: uuid.New(), PropertyTypeID: villa, Name: LocalizedText{EN: "Duplex"}},
	}

	options := LayoutOptions(layouts, apartment, LangEN)
	if len(options) != 2 {
		t.Fatalf("expected 2 layouts for type, got %d", len(options))
	}

	if got := LayoutOptions(layouts, uuid.Nil, LangEN); got != nil {
		t.Errorf("expected nil layouts without a type, got %v", got)
	}
}

func TestCityOptionsLocalize(t *testing.T) {
	cities := []City{
		{ID: uuid.New(), Name: LocalizedText{AR: "أنطاليا", EN: "Antalya", TR: "Antalya"}},
		{ID: uuid.New(), Name: LocalizedText{EN: "Istanbul"}},
	}

	arabic := CityOptions(cities, LangAR)
	if arabic[0].Label != "أنطاليا" {
		t.Errorf("expected arabic label, got %q", arabic[0].Label)
	}
	// The second city has no arabic name and must fall back to English.
	if arabic[1].Label != "Istanbul" {
		t.Errorf("expected english fallback, got %q", arabic[1].Label)
	}
}
