package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"
)

// RegisterUserUseCase creates an account and signs it in. Publishing roles
// (agent, property owner, office, partner) start on the configured trial;
// the admin and support roles cannot be self-registered.
type RegisterUserUseCase struct {
	users          port.UserRepositoryPort
	tokens         port.TokenServicePort
	accessTokenTTL time.Duration
	trialDays      int
}

func NewRegisterUserUseCase(users port.UserRepositoryPort, tokens port.TokenServicePort,
	accessTokenTTL time.Duration, trialDays int) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		users:          users,
		tokens:         tokens,
		accessTokenTTL: accessTokenTTL,
		trialDays:      trialDays,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"email":    email,
		"role":     role,
	})
	ucLogger.Info("Use case started: attempting to register user", nil)

	if !role.Valid() || role == domain.RoleAdmin || role == domain.RoleSupport {
		ucLogger.Warn("Registration failed: role not self-registrable", nil)
		return nil, "", fmt.Errorf("%w: role %q cannot be self-registered", domain.ErrValidation, role)
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Repository failed while checking for existing email", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	if existing != nil {
		ucLogger.Warn("Registration failed: email already in use", nil)
		return nil, "", domain.ErrEmailInUse
	}

	user, err := domain.NewUser(email, password, name, role, uc.trialDays)
	if err != nil {
		ucLogger.Error("Failed to create new user domain object", err, nil)
		return nil, "", err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"user_id": user.ID.String()})

	if err := uc.users.Create(ctx, user); err != nil {
		ucLogger.Error("Repository failed to create user", err, nil)
		return nil, "", err
	}

	token, err := uc.tokens.GenerateToken(ctx, user, uc.accessTokenTTL)
	if err != nil {
		ucLogger.Error("Failed to generate token after successful registration", err, nil)
		return nil, "", err
	}

	ucLogger.Info("Use case finished: user registered successfully", nil)
	return user, token, nil
}
