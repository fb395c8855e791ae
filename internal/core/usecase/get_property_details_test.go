package usecase

import (
	"context"
	"errors"
	"testing"

	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

func TestGetPropertyDetails(t *testing.T) {
	owner := uuid.New()
	visible := domain.Property{ID: uuid.New(), OwnerID: owner, Status: domain.StatusAvailable, ViewsCount: 7}
	hidden := domain.Property{ID: uuid.New(), OwnerID: owner, Status: domain.StatusPending}

	newUC := func() (*GetPropertyDetailsUseCase, *fakePropertyRepo) {
		repo := &fakePropertyRepo{properties: []domain.Property{visible, hidden}}
		return NewGetPropertyDetailsUseCase(repo), repo
	}

	t.Run("anonymous sees a visible listing", func(t *testing.T) {
		uc, repo := newUC()
		got, err := uc.Execute(context.Background(), visible.ID, nil)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got.ViewsCount != 8 {
			t.Errorf("ViewsCount = %d, want the incremented 8", got.ViewsCount)
		}
		if len(repo.viewed) != 1 || repo.viewed[0] != visible.ID {
			t.Errorf("view counter not incremented")
		}
	})

	t.Run("anonymous cannot see a pending listing", func(t *testing.T) {
		uc, _ := newUC()
		if _, err := uc.Execute(context.Background(), hidden.ID, nil); !errors.Is(err, domain.ErrPropertyNotFound) {
			t.Errorf("Execute() error = %v, want ErrPropertyNotFound", err)
		}
	})

	t.Run("stranger cannot see a pending listing", func(t *testing.T) {
		uc, _ := newUC()
		claims := &domain.Claims{UserID: uuid.New(), Role: domain.RoleAgent}
		if _, err := uc.Execute(context.Background(), hidden.ID, claims); !errors.Is(err, domain.ErrPropertyNotFound) {
			t.Errorf("Execute() error = %v, want ErrPropertyNotFound", err)
		}
	})

	t.Run("owner sees their pending listing", func(t *testing.T) {
		uc, _ := newUC()
		claims := &domain.Claims{UserID: owner, Role: domain.RoleAgent}
		if _, err := uc.Execute(context.Background(), hidden.ID, claims); err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})

	t.Run("admin sees any listing", func(t *testing.T) {
		uc, _ := newUC()
		claims := &domain.Claims{UserID: uuid.New(), Role: domain.RoleAdmin}
		if _, err := uc.Execute(context.Background(), hidden.ID, claims); err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})

	t.Run("unknown listing", func(t *testing.T) {
		uc, _ := newUC()
		if _, err := uc.Execute(context.Background(), uuid.New(), nil); !errors.Is(err, domain.ErrPropertyNotFound) {
			t.Errorf("Execute() error = %v, want ErrPropertyNotFound", err)
		}
	})

	t.Run("failed counter does not break the page", func(t *testing.T) {
		repo := &brokenCounterRepo{fakePropertyRepo{properties: []domain.Property{visible}}}
		uc := NewGetPropertyDetailsUseCase(repo)
		got, err := uc.Execute(context.Background(), visible.ID, nil)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got.ViewsCount != visible.ViewsCount {
			t.Errorf("ViewsCount = %d, must stay at %d when the counter fails", got.ViewsCount, visible.ViewsCount)
		}
	})
}

type brokenCounterRepo struct {
	fakePropertyRepo
}

func (r *brokenCounterRepo) IncrementViews(context.Context, uuid.UUID) error {
	return errors.New("counter unavailable")
}
