package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

func TestSearchPropertiesComposesFilters(t *testing.T) {
	antalya := uuid.New()
	istanbul := uuid.New()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	wanted := uuid.New()
	repo := &fakePropertyRepo{properties: []domain.Property{
		{ID: wanted, CityID: antalya, ListingType: domain.ListingTypeSale, Status: domain.StatusAvailable, Price: 300, CreatedAt: base},
		{ID: uuid.New(), CityID: istanbul, ListingType: domain.ListingTypeSale, Status: domain.StatusAvailable, Price: 300, CreatedAt: base},
		{ID: uuid.New(), CityID: antalya, ListingType: domain.ListingTypeRent, Status: domain.StatusAvailable, Price: 300, CreatedAt: base},
		{ID: uuid.New(), CityID: antalya, ListingType: domain.ListingTypeSale, Status: domain.StatusAvailable, Price: 9000, CreatedAt: base},
		{ID: uuid.New(), CityID: antalya, ListingType: domain.ListingTypeSale, Status: domain.StatusPending, Price: 300, CreatedAt: base},
	}}

	min, max := 100.0, 500.0
	uc := NewSearchPropertiesUseCase(repo, &fakeReferenceData{})
	result, err := uc.Execute(context.Background(), domain.SearchFilters{
		CityID:      antalya,
		ListingType: domain.ListingTypeSale,
		PriceMin:    &min,
		PriceMax:    &max,
	}, 10, 0)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", result.TotalCount)
	}
	if result.Properties[0].ID != wanted {
		t.Errorf("wrong listing survived the filters")
	}
}

func TestSearchPropertiesMatchesCityNames(t *testing.T) {
	antalya := uuid.New()
	repo := &fakePropertyRepo{properties: []domain.Property{
		{ID: uuid.New(), CityID: antalya, Title: domain.LocalizedText{EN: "Seaview flat"}, Status: domain.StatusAvailable},
		{ID: uuid.New(), CityID: uuid.New(), Title: domain.LocalizedText{EN: "Mountain cabin"}, Status: domain.StatusAvailable},
	}}
	refs := &fakeReferenceData{
		cities: []domain.City{{ID: antalya, Name: domain.LocalizedText{EN: "Antalya"}}},
	}

	uc := NewSearchPropertiesUseCase(repo, refs)
	result, err := uc.Execute(context.Background(), domain.SearchFilters{Query: "antalya"}, 10, 0)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.TotalCount != 1 || result.Properties[0].CityID != antalya {
		t.Errorf("free-text search did not match the city name, got %d results", result.TotalCount)
	}
}

func TestSearchPropertiesDefaultSortIsNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	oldest := uuid.New()
	newest := uuid.New()
	repo := &fakePropertyRepo{properties: []domain.Property{
		{ID: oldest, Status: domain.StatusAvailable, CreatedAt: base},
		{ID: newest, Status: domain.StatusAvailable, CreatedAt: base.Add(time.Hour)},
	}}

	uc := NewSearchPropertiesUseCase(repo, &fakeReferenceData{})
	result, err := uc.Execute(context.Background(), domain.SearchFilters{}, 10, 0)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Properties[0].ID != newest {
		t.Errorf("expected the newest listing first by default")
	}
}

func TestSearchPropertiesPagination(t *testing.T) {
	repo := &fakePropertyRepo{}
	for i := 0; i < 5; i++ {
		repo.properties = append(repo.properties, domain.Property{
			ID:     uuid.New(),
			Status: domain.StatusAvailable,
		})
	}

	uc := NewSearchPropertiesUseCase(repo, &fakeReferenceData{})
	result, err := uc.Execute(context.Background(), domain.SearchFilters{}, 2, 4)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", result.TotalCount)
	}
	if len(result.Properties) != 1 {
		t.Errorf("last page size = %d, want 1", len(result.Properties))
	}
	if result.CurrentPage != 3 {
		t.Errorf("CurrentPage = %d, want 3", result.CurrentPage)
	}
	if result.ItemsPerPage != 2 {
		t.Errorf("ItemsPerPage = %d, want 2", result.ItemsPerPage)
	}
}

func TestSearchPropertiesStorageError(t *testing.T) {
	repoErr := errors.New("connection refused")
	uc := NewSearchPropertiesUseCase(&fakePropertyRepo{err: repoErr}, &fakeReferenceData{})

	if _, err := uc.Execute(context.Background(), domain.SearchFilters{}, 10, 0); !errors.Is(err, repoErr) {
		t.Errorf("Execute() error = %v, want %v", err, repoErr)
	}
}

func TestSearchPropertiesSurvivesReferenceDataFailure(t *testing.T) {
	repo := &fakePropertyRepo{properties: []domain.Property{
		{ID: uuid.New(), Title: domain.LocalizedText{EN: "Seaview flat"}, Status: domain.StatusAvailable},
	}}
	refs := &fakeReferenceData{err: errors.New("dictionary table missing")}

	// Text search degrades to title matching when the dictionaries fail.
	uc := NewSearchPropertiesUseCase(repo, refs)
	result, err := uc.Execute(context.Background(), domain.SearchFilters{Query: "seaview"}, 10, 0)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", result.TotalCount)
	}
}
