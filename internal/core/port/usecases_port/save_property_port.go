package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

type SavePropertyUseCase interface {
	Execute(ctx context.Context, property *domain.Property, requester *domain.Claims) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID, requester *domain.Claims) error
}
