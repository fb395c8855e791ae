package usecase

import (
	"context"
	"testing"

	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

func TestGetFilterOptionsDerivesBoundsFromMatches(t *testing.T) {
	antalya := uuid.New()
	repo := &fakePropertyRepo{properties: []domain.Property{
		{CityID: antalya, Status: domain.StatusAvailable, Price: 100},
		{CityID: antalya, Status: domain.StatusAvailable, Price: 500},
		{CityID: uuid.New(), Status: domain.StatusAvailable, Price: 99999},
	}}

	uc := NewGetFilterOptionsUseCase(repo, &fakeReferenceData{})
	result, err := uc.Execute(context.Background(), domain.SearchFilters{CityID: antalya}, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := domain.PriceBounds{Min: 90, Max: 550}
	if result.PriceBounds != want {
		t.Errorf("PriceBounds = %+v, want %+v", result.PriceBounds, want)
	}
	if result.PriceSelection != want {
		t.Errorf("selection should default to the full bound, got %+v", result.PriceSelection)
	}
	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
}

func TestGetFilterOptionsBoundsIgnorePriceSelection(t *testing.T) {
	repo := &fakePropertyRepo{properties: []domain.Property{
		{Status: domain.StatusAvailable, Price: 100},
		{Status: domain.StatusAvailable, Price: 500},
	}}

	// A narrow price selection must not shrink the slider's own bound.
	min, max := 200.0, 300.0
	uc := NewGetFilterOptionsUseCase(repo, &fakeReferenceData{})
	result, err := uc.Execute(context.Background(), domain.SearchFilters{PriceMin: &min, PriceMax: &max},
		&domain.PriceBounds{Min: 200, Max: 300})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if want := (domain.PriceBounds{Min: 90, Max: 550}); result.PriceBounds != want {
		t.Errorf("PriceBounds = %+v, want %+v", result.PriceBounds, want)
	}
	if want := (domain.PriceBounds{Min: 200, Max: 300}); result.PriceSelection != want {
		t.Errorf("an in-range selection must survive, got %+v", result.PriceSelection)
	}
}

func TestGetFilterOptionsResetsOutOfRangeSelection(t *testing.T) {
	repo := &fakePropertyRepo{properties: []domain.Property{
		{Status: domain.StatusAvailable, Price: 100},
		{Status: domain.StatusAvailable, Price: 500},
	}}

	uc := NewGetFilterOptionsUseCase(repo, &fakeReferenceData{})
	result, err := uc.Execute(context.Background(), domain.SearchFilters{},
		&domain.PriceBounds{Min: 10, Max: 9999})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.PriceSelection != result.PriceBounds {
		t.Errorf("an out-of-range selection must reset to the bound, got %+v", result.PriceSelection)
	}
}

func TestGetFilterOptionsDefaultBoundWithoutListings(t *testing.T) {
	uc := NewGetFilterOptionsUseCase(&fakePropertyRepo{}, &fakeReferenceData{})
	result, err := uc.Execute(context.Background(), domain.SearchFilters{}, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.PriceBounds != domain.DefaultPriceBounds {
		t.Errorf("PriceBounds = %+v, want default %+v", result.PriceBounds, domain.DefaultPriceBounds)
	}
}

func TestGetFilterOptionsNarrowsDistrictsAndLayouts(t *testing.T) {
	antalya := uuid.New()
	apartment := uuid.New()
	refs := &fakeReferenceData{
		districts: []domain.District{
			{ID: uuid.New(), CityID: antalya, Name: domain.LocalizedText{EN: "Konyaalti"}},
			{ID: uuid.New(), CityID: uuid.New(), Name: domain.LocalizedText{EN: "Kadikoy"}},
		},
		layouts: []domain.PropertyLayout{
			{ID: uuid.New(), PropertyTypeID: apartment, Name: domain.LocalizedText{EN: "1+1"}},
			{ID: uuid.New(), PropertyTypeID: uuid.New(), Name: domain.LocalizedText{EN: "Duplex"}},
		},
	}

	uc := NewGetFilterOptionsUseCase(&fakePropertyRepo{}, refs)

	t.Run("city and type selected", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), domain.SearchFilters{
			CityID:         antalya,
			PropertyTypeID: apartment,
			Lang:           domain.LangEN,
		}, nil)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(result.Districts) != 1 || result.Districts[0].Label != "Konyaalti" {
			t.Errorf("Districts = %+v, want only Konyaalti", result.Districts)
		}
		if len(result.Layouts) != 1 || result.Layouts[0].Label != "1+1" {
			t.Errorf("Layouts = %+v, want only 1+1", result.Layouts)
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), domain.SearchFilters{Lang: domain.LangEN}, nil)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Districts != nil {
			t.Errorf("districts offered without a city: %+v", result.Districts)
		}
		if result.Layouts != nil {
			t.Errorf("layouts offered without a type: %+v", result.Layouts)
		}
	})
}
