package domain

import "github.com/google/uuid"

// City is a top-level location reference.
type City struct {
	ID   uuid.UUID
	Name LocalizedText
}

// District belongs to exactly one city.
type District struct {
	ID     uuid.UUID
	CityID uuid.UUID
	Name   LocalizedText
}

// PropertyType is a listing category reference (apartment, villa, land...).
type PropertyType struct {
	ID   uuid.UUID
	Name LocalizedText
}

// PropertyLayout is a room/configuration category (e.g. "2+1"), scoped to
// one property type.
type PropertyLayout struct {
	ID             uuid.UUID
	PropertyTypeID uuid.UUID
	Name           LocalizedText
}
