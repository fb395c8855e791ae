package port

import (
	"context"
	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepositoryPort - persistence boundary for platform accounts.
// Find methods return (nil, nil) when no row matches.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
