package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/google/uuid"
)

// GetPropertyDetailsUseCase fetches one listing. Pending and hidden
// listings are only served to their owner and to admins; everyone else
// gets a not-found, never a hint that the listing exists.
type GetPropertyDetailsUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyRepositoryPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID uuid.UUID, requester *domain.Claims) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID.String(),
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

	if !property.Status.PubliclyVisible() {
		isOwner := requester != nil && requester.UserID == property.OwnerID
		if !isOwner && !requester.IsAdmin() {
			ucLogger.Warn("Non-visible listing requested by a third party", nil)
			return nil, domain.ErrPropertyNotFound
		}
	}

	// Best-effort view counter; a failed increment must not break the page.
	if err := uc.properties.IncrementViews(ctx, propertyID); err != nil {
		ucLogger.Error("WARN: failed to increment view counter", err, nil)
	} else {
		property.ViewsCount++
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
