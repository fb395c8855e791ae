package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/google/uuid"
)

// UnsuspendUserUseCase lifts a suspension.
type UnsuspendUserUseCase struct {
	users port.UserRepositoryPort
}

func NewUnsuspendUserUseCase(users port.UserRepositoryPort) *UnsuspendUserUseCase {
	return &UnsuspendUserUseCase{users: users}
}

func (uc *UnsuspendUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UnsuspendUser",
		"user_id":  userID.String(),
	})
	ucLogger.Info("Use case started", nil)

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Unsuspend()
	if err := uc.users.Update(ctx, user); err != nil {
		ucLogger.Error("Repository failed to update user", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}
