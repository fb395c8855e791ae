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

// SavePropertyUseCase creates or updates a listing. New listings require a
// publishing account in good standing (not suspended, trial not expired);
// updates are allowed for the owner and admins. Every successful save
// publishes a property.upserted event for downstream consumers.
type SavePropertyUseCase struct {
	properties port.PropertyRepositoryPort
	users      port.UserRepositoryPort
	refs       port.ReferenceDataPort
	events     port.DomainEventsPort
}

func NewSavePropertyUseCase(properties port.PropertyRepositoryPort, users port.UserRepositoryPort,
	refs port.ReferenceDataPort, events port.DomainEventsPort) *SavePropertyUseCase {
	return &SavePropertyUseCase{properties: properties, users: users, refs: refs, events: events}
}

func (uc *SavePropertyUseCase) Execute(ctx context.Context, property *domain.Property, requester *domain.Claims) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SaveProperty",
		"user_id":  requester.UserID.String(),
	})
	ucLogger.Info("Use case started", nil)

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Listing failed validation", port.Fields{"reason": err.Error()})
		return nil, err
	}
	if err := uc.checkLayoutScope(ctx, property); err != nil {
		ucLogger.Warn("Listing failed validation", port.Fields{"reason": err.Error()})
		return nil, err
	}

	now := time.Now().UTC()

	if property.ID == uuid.Nil {
		// Creation path: the publisher's account state gates the write.
		user, err := uc.users.FindByID(ctx, requester.UserID)
		if err != nil {
			ucLogger.Error("Repository failed while loading the publisher", err, nil)
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		if !requester.IsAdmin() {
			if user.SuspensionActive(now) {
				ucLogger.Warn("Suspended account attempted to publish", nil)
				return nil, domain.ErrUserSuspended
			}
			if user.TrialExpired(now) {
				ucLogger.Warn("Account with expired trial attempted to publish", nil)
				return nil, domain.ErrTrialExpired
			}
			if !user.Role.CanPublishListings() {
				return nil, domain.ErrForbidden
			}
		}

		property.ID = uuid.New()
		property.OwnerID = requester.UserID
		property.ViewsCount = 0
		property.CreatedAt = now
	} else {
		existing, err := uc.properties.FindByID(ctx, property.ID)
		if err != nil {
			ucLogger.Error("Storage returned an error", err, nil)
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrPropertyNotFound
		}
		if existing.OwnerID != requester.UserID && !requester.IsAdmin() {
			ucLogger.Warn("Update rejected: requester is neither owner nor admin", nil)
			return nil, domain.ErrForbidden
		}
		// Immutable fields survive the update as-is.
		property.OwnerID = existing.OwnerID
		property.ViewsCount = existing.ViewsCount
		property.CreatedAt = existing.CreatedAt
	}
	property.UpdatedAt = now

	if err := uc.properties.Save(ctx, property); err != nil {
		ucLogger.Error("Storage failed to save the listing", err, nil)
		return nil, err
	}

	if err := uc.events.PublishPropertyUpserted(ctx, property); err != nil {
		// Event delivery is best-effort; the listing is already saved.
		ucLogger.Error("WARN: failed to publish property.upserted event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID.String()})
	return property, nil
}

// checkLayoutScope enforces that a chosen layout belongs to the chosen
// property type.
func (uc *SavePropertyUseCase) checkLayoutScope(ctx context.Context, property *domain.Property) error {
	if property.PropertyLayoutID == uuid.Nil {
		return nil
	}
	layouts, err := uc.refs.PropertyLayouts(ctx)
	if err != nil {
		return err
	}
	for _, layout := range layouts {
		if layout.ID == property.PropertyLayoutID {
			if layout.PropertyTypeID != property.PropertyTypeID {
				return fmt.Errorf("%w: layout does not belong to the chosen property type", domain.ErrValidation)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: unknown property layout", domain.ErrValidation)
}
