package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	"github.com/google/uuid"
)

// FeaturePropertyUseCase toggles the featured flag shown on the homepage.
type FeaturePropertyUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewFeaturePropertyUseCase(properties port.PropertyRepositoryPort) *FeaturePropertyUseCase {
	return &FeaturePropertyUseCase{properties: properties}
}

func (uc *FeaturePropertyUseCase) Execute(ctx context.Context, propertyID uuid.UUID, featured bool) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "FeatureProperty",
		"property_id": propertyID.String(),
		"featured":    featured,
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrPropertyNotFound
	}

	property.IsFeatured = featured
	property.UpdatedAt = time.Now().UTC()
	if err := uc.properties.Save(ctx, property); err != nil {
		ucLogger.Error("Storage failed to save the listing", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
