package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

func TestSuspendUser(t *testing.T) {
	agent := domain.User{ID: uuid.New(), Email: "agent@example.com", Role: domain.RoleAgent}
	until := time.Now().UTC().Add(72 * time.Hour)

	users := &fakeUserRepo{users: []domain.User{agent}}
	events := &fakeDomainEvents{}
	uc := NewSuspendUserUseCase(users, events)

	suspended, err := uc.Execute(context.Background(), agent.ID, &until, "spam listings")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !suspended.IsSuspended || suspended.SuspensionReason != "spam listings" {
		t.Errorf("suspension state not applied: %+v", suspended)
	}
	if suspended.SuspendedUntil == nil || !suspended.SuspendedUntil.Equal(until) {
		t.Errorf("SuspendedUntil = %v, want %v", suspended.SuspendedUntil, until)
	}
	if len(users.updated) != 1 {
		t.Fatalf("expected 1 update, got %d", len(users.updated))
	}
	if len(events.suspended) != 1 || events.suspended[0].ID != agent.ID {
		t.Errorf("user.suspended event not published")
	}
}

func TestSuspendUserRefusesAdmins(t *testing.T) {
	admin := domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
	users := &fakeUserRepo{users: []domain.User{admin}}
	events := &fakeDomainEvents{}
	uc := NewSuspendUserUseCase(users, events)

	_, err := uc.Execute(context.Background(), admin.ID, nil, "test")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Execute() error = %v, want ErrForbidden", err)
	}
	if len(users.updated) != 0 || len(events.suspended) != 0 {
		t.Errorf("admin account must stay untouched")
	}
}

func TestSuspendUserNotFound(t *testing.T) {
	uc := NewSuspendUserUseCase(&fakeUserRepo{}, &fakeDomainEvents{})
	if _, err := uc.Execute(context.Background(), uuid.New(), nil, ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Execute() error = %v, want ErrUserNotFound", err)
	}
}

func TestSuspendUserEventFailureDoesNotFail(t *testing.T) {
	agent := domain.User{ID: uuid.New(), Role: domain.RoleAgent}
	users := &fakeUserRepo{users: []domain.User{agent}}
	uc := NewSuspendUserUseCase(users, &fakeDomainEvents{err: errors.New("broker down")})

	if _, err := uc.Execute(context.Background(), agent.ID, nil, "fraud"); err != nil {
		t.Errorf("Execute() error = %v, publishing is best-effort", err)
	}
	if len(users.updated) != 1 {
		t.Errorf("suspension must be persisted even when the broker is down")
	}
}
