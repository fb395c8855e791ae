package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListingType - whether a property is offered for sale or for rent.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

func (lt ListingType) Valid() bool {
	return lt == ListingTypeSale || lt == ListingTypeRent
}

// PropertyStatus - lifecycle state of a listing. Pending and hidden
// listings are visible to their owner (and admins) but not publicly listed.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusPending   PropertyStatus = "pending"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
	StatusHidden    PropertyStatus = "hidden"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold, StatusRented, StatusHidden:
		return true
	}
	return false
}

// PubliclyVisible reports whether listings in this status appear in the
// public search.
func (s PropertyStatus) PubliclyVisible() bool {
	return s != StatusPending && s != StatusHidden
}

// Property - the central listing entity. Location references are held by id
// only; display-name resolution happens in the localization layer.
type Property struct {
	ID      uuid.UUID
	OwnerID uuid.UUID

	Title       LocalizedText
	Description LocalizedText
	// LegacyTitle carries the single-language title of listings created
	// before the platform became multilingual. Used only as a last-resort
	// display fallback and in free-text search.
	LegacyTitle string

	Price    float64
	Currency string

	ListingType ListingType
	Status      PropertyStatus

	CityID           uuid.UUID
	DistrictID       uuid.UUID
	PropertyTypeID   uuid.UUID
	PropertyLayoutID uuid.UUID

	Bedrooms  int
	Bathrooms int
	Area      float64 // m²

	IsFeatured bool
	Images     []string
	CoverImage string
	ViewsCount int

	Latitude  *float64
	Longitude *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayTitle resolves the title for the given language: localized value,
// then English, then the legacy single-language title.
func (p *Property) DisplayTitle(lang Lang) string {
	if title := p.Title.In(lang); title != "" {
		return title
	}
	return p.LegacyTitle
}

// Validate enforces the write-time invariants of a listing.
func (p *Property) Validate() error {
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if p.Title.IsEmpty() && p.LegacyTitle == "" {
		return fmt.Errorf("%w: at least one localized title is required", ErrValidation)
	}
	if !p.ListingType.Valid() {
		return fmt.Errorf("%w: unknown listing type %q", ErrValidation, p.ListingType)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, p.Status)
	}
	if p.CityID == uuid.Nil {
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	return nil
}

// PaginatedResult - standard shape for paged listing responses.
type PaginatedResult struct {
	Properties   []Property
	TotalCount   int
	CurrentPage  int
	ItemsPerPage int
}
