package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID, requester *domain.Claims) (*domain.Property, error)
}
