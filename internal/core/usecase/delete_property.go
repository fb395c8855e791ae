package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"

	"github.com/google/uuid"
)

// DeletePropertyUseCase removes a listing; only the owner and admins may.
type DeletePropertyUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewDeletePropertyUseCase(properties port.PropertyRepositoryPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, propertyID uuid.UUID, requester *domain.Claims) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": propertyID.String(),
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}
	if property == nil {
		return domain.ErrPropertyNotFound
	}
	if property.OwnerID != requester.UserID && !requester.IsAdmin() {
		ucLogger.Warn("Delete rejected: requester is neither owner nor admin", nil)
		return domain.ErrForbidden
	}

	if err := uc.properties.Delete(ctx, propertyID); err != nil {
		ucLogger.Error("Storage failed to delete the listing", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
