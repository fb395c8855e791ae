package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		property Property
		lang     Lang
		want     string
	}{
		{
			name:     "requested language",
			property: Property{Title: LocalizedText{AR: "فيلا", EN: "Villa"}},
			lang:     LangAR,
			want:     "فيلا",
		},
		{
			name:     "english fallback",
			property: Property{Title: LocalizedText{EN: "Villa"}},
			lang:     LangTR,
			want:     "Villa",
		},
		{
			name:     "legacy fallback when no localized title",
			property: Property{LegacyTitle: "Pre-migration listing"},
			lang:     LangEN,
			want:     "Pre-migration listing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.property.DisplayTitle(tt.lang); got != tt.want {
				t.Errorf("DisplayTitle(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestPropertyValidate(t *testing.T) {
	valid := Property{
		Title:       LocalizedText{EN: "Apartment"},
		Price:       1000,
		ListingType: ListingTypeSale,
		Status:      StatusAvailable,
		CityID:      uuid.New(),
	}

	tests := []struct {
		name    string
		mutate  func(p *Property)
		wantErr bool
	}{
		{"valid listing", func(p *Property) {}, false},
		{"legacy title is enough", func(p *Property) { p.Title = LocalizedText{}; p.LegacyTitle = "old" }, false},
		{"negative price", func(p *Property) { p.Price = -1 }, true},
		{"free listing is allowed", func(p *Property) { p.Price = 0 }, false},
		{"no title at all", func(p *Property) { p.Title = LocalizedText{} }, true},
		{"unknown listing type", func(p *Property) { p.ListingType = "lease" }, true},
		{"unknown status", func(p *Property) { p.Status = "archived" }, true},
		{"missing city", func(p *Property) { p.CityID = uuid.Nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("validation errors must wrap ErrValidation, got %v", err)
			}
		})
	}
}

func TestStatusPubliclyVisible(t *testing.T) {
	visible := []PropertyStatus{StatusAvailable, StatusSold, StatusRented}
	hidden := []PropertyStatus{StatusPending, StatusHidden}

	for _, s := range visible {
		if !s.PubliclyVisible() {
			t.Errorf("status %q should be publicly visible", s)
		}
	}
	for _, s := range hidden {
		if s.PubliclyVisible() {
			t.Errorf("status %q should not be publicly visible", s)
		}
	}
}
