package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/google/uuid"
)

// ChangeUserRoleUseCase reassigns an account's role from the back-office.
type ChangeUserRoleUseCase struct {
	users port.UserRepositoryPort
}

func NewChangeUserRoleUseCase(users port.UserRepositoryPort) *ChangeUserRoleUseCase {
	return &ChangeUserRoleUseCase{users: users}
}

func (uc *ChangeUserRoleUseCase) Execute(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ChangeUserRole",
		"user_id":  userID.String(),
		"role":     role,
	})
	ucLogger.Info("Use case started", nil)

	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Role = role
	if err := uc.users.Update(ctx, user); err != nil {
		ucLogger.Error("Repository failed to update user", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}
