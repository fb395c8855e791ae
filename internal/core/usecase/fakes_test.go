package usecase

import (
	"context"
	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

// In-memory ports for use case tests.

type fakePropertyRepo struct {
	properties []domain.Property
	err        error

	saved   []*domain.Property
	deleted []uuid.UUID
	viewed  []uuid.UUID
}

func (f *fakePropertyRepo) Save(_ context.Context, property *domain.Property) error {
	if f.err != nil {
		return f.err
	}
	copied := *property
	f.saved = append(f.saved, &copied)
	return nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.properties {
		if f.properties[i].ID == id {
			copied := f.properties[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePropertyRepo) FindVisible(_ context.Context) ([]domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	visible := make([]domain.Property, 0, len(f.properties))
	for _, p := range f.properties {
		if p.Status.PubliclyVisible() {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (f *fakePropertyRepo) FindAll(_ context.Context, ownerID uuid.UUID) ([]domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	if ownerID == uuid.Nil {
		return append([]domain.Property(nil), f.properties...), nil
	}
	owned := make([]domain.Property, 0, len(f.properties))
	for _, p := range f.properties {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (f *fakePropertyRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.viewed = append(f.viewed, id)
	return nil
}

type fakeReferenceData struct {
	cities    []domain.City
	districts []domain.District
	types     []domain.PropertyType
	layouts   []domain.PropertyLayout
	err       error
}

func (f *fakeReferenceData) Cities(_ context.Context) ([]domain.City, error) {
	return f.cities, f.err
}

func (f *fakeReferenceData) Districts(_ context.Context) ([]domain.District, error) {
	return f.districts, f.err
}

func (f *fakeReferenceData) PropertyTypes(_ context.Context) ([]domain.PropertyType, error) {
	return f.types, f.err
}

func (f *fakeReferenceData) PropertyLayouts(_ context.Context) ([]domain.PropertyLayout, error) {
	return f.layouts, f.err
}

type fakeUserRepo struct {
	users []domain.User
	err   error

	updated []*domain.User
	created []*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	copied := *user
	f.created = append(f.created, &copied)
	f.users = append(f.users, copied)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	copied := *user
	f.updated = append(f.updated, &copied)
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = copied
		}
	}
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			copied := f.users[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			copied := f.users[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.User(nil), f.users...), nil
}

type fakeDomainEvents struct {
	upserted  []*domain.Property
	suspended []*domain.User
	err       error
}

func (f *fakeDomainEvents) PublishPropertyUpserted(_ context.Context, property *domain.Property) error {
	if f.err != nil {
		return f.err
	}
	copied := *property
	f.upserted = append(f.upserted, &copied)
	return nil
}

func (f *fakeDomainEvents) PublishUserSuspended(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	copied := *user
	f.suspended = append(f.suspended, &copied)
	return nil
}
