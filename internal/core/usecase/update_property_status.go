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

// UpdatePropertyStatusUseCase is the back-office moderation action: approve
// a pending listing, mark it sold/rented, or hide it from the public site.
type UpdatePropertyStatusUseCase struct {
	properties port.PropertyRepositoryPort
	events     port.DomainEventsPort
}

func NewUpdatePropertyStatusUseCase(properties port.PropertyRepositoryPort, events port.DomainEventsPort) *UpdatePropertyStatusUseCase {
	return &UpdatePropertyStatusUseCase{properties: properties, events: events}
}

func (uc *UpdatePropertyStatusUseCase) Execute(ctx context.Context, propertyID uuid.UUID, status domain.PropertyStatus) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdatePropertyStatus",
		"property_id": propertyID.String(),
		"status":      status,
	})
	ucLogger.Info("Use case started", nil)

	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrPropertyNotFound
	}

	property.Status = status
	property.UpdatedAt = time.Now().UTC()
	if err := uc.properties.Save(ctx, property); err != nil {
		ucLogger.Error("Storage failed to save the listing", err, nil)
		return nil, err
	}

	if err := uc.events.PublishPropertyUpserted(ctx, property); err != nil {
		ucLogger.Error("WARN: failed to publish property.upserted event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
