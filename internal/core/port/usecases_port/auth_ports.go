package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, string, error)
}

type LoginUserUseCase interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}
