package port

import (
	"context"
	"listings-service/internal/core/domain"
	"time"
)

// TokenServicePort issues and validates the platform's auth tokens.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
}
