package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"listings-service/internal/core/domain"
)

type fakeTokenService struct {
	token string
	err   error
}

func (f *fakeTokenService) GenerateToken(_ context.Context, _ *domain.User, _ time.Duration) (string, error) {
	return f.token, f.err
}

func (f *fakeTokenService) ValidateToken(_ context.Context, _ string) (*domain.Claims, error) {
	return nil, errors.New("not used in tests")
}

func TestRegisterUser(t *testing.T) {
	users := &fakeUserRepo{}
	uc := NewRegisterUserUseCase(users, &fakeTokenService{token: "signed"}, time.Hour, 14)

	user, token, err := uc.Execute(context.Background(), "agent@example.com", "secret", "Agent", domain.RoleAgent)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if token != "signed" {
		t.Errorf("token = %q, want the issued one", token)
	}
	if user.TrialExpiresAt == nil {
		t.Errorf("publishing role should start on a trial")
	}
	if len(users.created) != 1 {
		t.Errorf("expected 1 created account, got %d", len(users.created))
	}
}

func TestRegisterUserRejectsReservedRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSupport, "superuser"} {
		t.Run(string(role), func(t *testing.T) {
			uc := NewRegisterUserUseCase(&fakeUserRepo{}, &fakeTokenService{}, time.Hour, 14)
			_, _, err := uc.Execute(context.Background(), "x@example.com", "secret", "X", role)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Execute() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	existing, err := domain.NewUser("taken@example.com", "pw", "T", domain.RoleClient, 0)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	uc := NewRegisterUserUseCase(&fakeUserRepo{users: []domain.User{*existing}}, &fakeTokenService{}, time.Hour, 14)

	_, _, err = uc.Execute(context.Background(), "taken@example.com", "secret", "X", domain.RoleClient)
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Errorf("Execute() error = %v, want ErrEmailInUse", err)
	}
}

func TestLoginUser(t *testing.T) {
	account, err := domain.NewUser("agent@example.com", "correct horse", "Agent", domain.RoleAgent, 14)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(&fakeUserRepo{users: []domain.User{*account}}, &fakeTokenService{token: "signed"}, time.Hour)
		user, token, err := uc.Execute(context.Background(), "agent@example.com", "correct horse")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if token != "signed" || user.ID != account.ID {
			t.Errorf("unexpected login result: token=%q user=%v", token, user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewLoginUserUseCase(&fakeUserRepo{users: []domain.User{*account}}, &fakeTokenService{}, time.Hour)
		if _, _, err := uc.Execute(context.Background(), "agent@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Execute() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewLoginUserUseCase(&fakeUserRepo{}, &fakeTokenService{}, time.Hour)
		if _, _, err := uc.Execute(context.Background(), "nobody@example.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Execute() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("suspended account", func(t *testing.T) {
		suspended := *account
		suspended.Suspend(nil, "fraud")
		uc := NewLoginUserUseCase(&fakeUserRepo{users: []domain.User{suspended}}, &fakeTokenService{}, time.Hour)
		if _, _, err := uc.Execute(context.Background(), "agent@example.com", "correct horse"); !errors.Is(err, domain.ErrUserSuspended) {
			t.Errorf("Execute() error = %v, want ErrUserSuspended", err)
		}
	})

	t.Run("elapsed suspension is ignored", func(t *testing.T) {
		past := time.Now().UTC().Add(-time.Hour)
		lapsed := *account
		lapsed.Suspend(&past, "old offense")
		uc := NewLoginUserUseCase(&fakeUserRepo{users: []domain.User{lapsed}}, &fakeTokenService{token: "signed"}, time.Hour)
		if _, _, err := uc.Execute(context.Background(), "agent@example.com", "correct horse"); err != nil {
			t.Errorf("Execute() error = %v, a lapsed suspension must not block login", err)
		}
	})
}
