package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService implements TokenServicePort with HS256-signed JWTs.
type TokenService struct {
	signingKey []byte
}

func NewTokenService(signingKey string) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenService{signingKey: []byte(signingKey)}, nil
}

type jwtCustomClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

func (s *TokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
		"user_id":   user.ID.String(),
	})

	serviceLogger.Info("Generating new token.", port.Fields{"ttl": ttl.String()})
	claims := &jwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "listings-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	serviceLogger.Info("Token generated successfully.", nil)
	return signedToken, nil
}

func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			alg := token.Header["alg"]
			serviceLogger.Error("Unexpected signing method detected", fmt.Errorf("algorithm %v is not HS256", alg), port.Fields{"algorithm": alg})
			return nil, fmt.Errorf("unexpected signing method: %v", alg)
		}
		return s.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// token.Valid is false here but the claims are still readable.
			if claims, ok := token.Claims.(*jwtCustomClaims); ok {
				serviceLogger.Warn("Token has expired", port.Fields{"user_id": claims.UserID.String(), "email": claims.Email})
			} else {
				serviceLogger.Warn("An expired token could not be parsed to claims", nil)
			}
		} else {
			serviceLogger.Error("Invalid token format or signature", err, nil)
		}
		return nil, domain.ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*jwtCustomClaims); ok && token.Valid {
		serviceLogger.Debug("Token validated successfully.", port.Fields{
			"user_id": claims.UserID.String(),
			"role":    claims.Role,
		})

		return &domain.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   domain.Role(claims.Role),
		}, nil
	}

	serviceLogger.Error("Token was parsed without error, but claims type assertion failed", nil, nil)
	return nil, domain.ErrTokenInvalid
}
