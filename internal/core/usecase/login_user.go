package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"
)

// LoginUserUseCase verifies credentials and issues a token. An actively
// suspended account cannot sign in; a lapsed suspension is ignored.
type LoginUserUseCase struct {
	users          port.UserRepositoryPort
	tokens         port.TokenServicePort
	accessTokenTTL time.Duration
}

func NewLoginUserUseCase(users port.UserRepositoryPort, tokens port.TokenServicePort, accessTokenTTL time.Duration) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, tokens: tokens, accessTokenTTL: accessTokenTTL}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, email, password string) (*domain.User, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"email":    email,
	})
	ucLogger.Info("Use case started: attempting to log in", nil)

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Repository failed while loading user", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	if user == nil || !user.CheckPassword(password) {
		ucLogger.Warn("Login failed: invalid credentials", nil)
		return nil, "", domain.ErrInvalidCredentials
	}

	if user.SuspensionActive(time.Now().UTC()) {
		ucLogger.Warn("Login rejected: account is suspended", port.Fields{
			"reason": user.SuspensionReason,
		})
		return nil, "", domain.ErrUserSuspended
	}

	token, err := uc.tokens.GenerateToken(ctx, user, uc.accessTokenTTL)
	if err != nil {
		ucLogger.Error("Failed to generate token", err, nil)
		return nil, "", err
	}

	ucLogger.Info("Use case finished: user logged in", port.Fields{"user_id": user.ID.String()})
	return user, token, nil
}
