package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// UserListFilters - back-office user list narrowing; zero values mean all.
type UserListFilters struct {
	Role  domain.Role
	Query string // matched against email and name
}

type AdminListUsersUseCase interface {
	Execute(ctx context.Context, filters UserListFilters) ([]domain.User, error)
}

type SuspendUserUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, until *time.Time, reason string) (*domain.User, error)
}

type UnsuspendUserUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type ExtendTrialUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, days int) (*domain.User, error)
}

type ChangeUserRoleUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.User, error)
}
