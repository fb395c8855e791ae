package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	"github.com/google/uuid"
)

// SuspendUserUseCase blocks an account until the given time (nil =
// permanently) and publishes a user.suspended event so the notification
// sender can inform the user.
type SuspendUserUseCase struct {
	users  port.UserRepositoryPort
	events port.DomainEventsPort
}

func NewSuspendUserUseCase(users port.UserRepositoryPort, events port.DomainEventsPort) *SuspendUserUseCase {
	return &SuspendUserUseCase{users: users, events: events}
}

func (uc *SuspendUserUseCase) Execute(ctx context.Context, userID uuid.UUID, until *time.Time, reason string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SuspendUser",
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
	if user.Role == domain.RoleAdmin {
		ucLogger.Warn("Refusing to suspend an admin account", nil)
		return nil, domain.ErrForbidden
	}

	user.Suspend(until, reason)
	if err := uc.users.Update(ctx, user); err != nil {
		ucLogger.Error("Repository failed to update user", err, nil)
		return nil, err
	}

	if err := uc.events.PublishUserSuspended(ctx, user); err != nil {
		ucLogger.Error("WARN: failed to publish user.suspended event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"permanent": until == nil,
	})
	return user, nil
}
