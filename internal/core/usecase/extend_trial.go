package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	"github.com/google/uuid"
)

// ExtendTrialUseCase pushes an account's trial expiry out by N days. An
// already-expired trial is extended from now, not from the lapsed expiry.
type ExtendTrialUseCase struct {
	users port.UserRepositoryPort
}

func NewExtendTrialUseCase(users port.UserRepositoryPort) *ExtendTrialUseCase {
	return &ExtendTrialUseCase{users: users}
}

func (uc *ExtendTrialUseCase) Execute(ctx context.Context, userID uuid.UUID, days int) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ExtendTrial",
		"user_id":  userID.String(),
		"days":     days,
	})
	ucLogger.Info("Use case started", nil)

	if days <= 0 {
		return nil, fmt.Errorf("%w: extension days must be positive", domain.ErrValidation)
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Role.CanPublishListings() {
		ucLogger.Warn("Trial extension rejected: role has no trial", nil)
		return nil, fmt.Errorf("%w: role %q has no trial to extend", domain.ErrValidation, user.Role)
	}

	user.ExtendTrial(days, time.Now().UTC())
	if err := uc.users.Update(ctx, user); err != nil {
		ucLogger.Error("Repository failed to update user", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"trial_expires_at": user.TrialExpiresAt,
	})
	return user, nil
}
