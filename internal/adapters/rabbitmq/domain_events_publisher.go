package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listings-service/internal/constants"
	"listings-service/internal/contextkeys"
	"listings-service/internal/contracts"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// PropertyUpsertedDTO - payload of the property.upserted.v1 message.
type PropertyUpsertedDTO struct {
	PropertyID  uuid.UUID `json:"property_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Status      string    `json:"status"`
	ListingType string    `json:"listing_type"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency,omitempty"`
	CityID      string    `json:"city_id,omitempty"`
	IsFeatured  bool      `json:"is_featured,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// UserSuspendedDTO - payload of the user.suspended.v1 message.
type UserSuspendedDTO struct {
	UserID         uuid.UUID  `json:"user_id"`
	Email          string     `json:"email"`
	Reason         string     `json:"reason,omitempty"`
	Permanent      bool       `json:"permanent"`
	SuspendedUntil *time.Time `json:"suspended_until,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// DomainEventsAdapter publishes integration events to the shared exchange.
// Every outgoing body is checked against its registered JSON schema first
// so consumers never see a malformed message.
type DomainEventsAdapter struct {
	producer *rabbitmq_producer.Publisher
}

func NewDomainEventsAdapter(producer *rabbitmq_producer.Publisher) (*DomainEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &DomainEventsAdapter{producer: producer}, nil
}

func (a *DomainEventsAdapter) PublishPropertyUpserted(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "DomainEventsAdapter",
		"routing_key": constants.RoutingKeyPropertyUpserted,
		"property_id": property.ID.String(),
	})

	dto := PropertyUpsertedDTO{
		PropertyID:  property.ID,
		OwnerID:     property.OwnerID,
		Status:      string(property.Status),
		ListingType: string(property.ListingType),
		Price:       property.Price,
		Currency:    property.Currency,
		CityID:      property.CityID.String(),
		IsFeatured:  property.IsFeatured,
		OccurredAt:  time.Now().UTC(),
	}

	return a.publish(ctx, adapterLogger, "PropertyUpsertedEvent", constants.RoutingKeyPropertyUpserted, dto)
}

func (a *DomainEventsAdapter) PublishUserSuspended(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "DomainEventsAdapter",
		"routing_key": constants.RoutingKeyUserSuspended,
		"user_id":     user.ID.String(),
	})

	dto := UserSuspendedDTO{
		UserID:         user.ID,
		Email:          user.Email,
		Reason:         user.SuspensionReason,
		Permanent:      user.SuspendedUntil == nil,
		SuspendedUntil: user.SuspendedUntil,
		OccurredAt:     time.Now().UTC(),
	}

	return a.publish(ctx, adapterLogger, "UserSuspendedEvent", constants.RoutingKeyUserSuspended, dto)
}

func (a *DomainEventsAdapter) publish(ctx context.Context, adapterLogger port.LoggerPort, eventType, routingKey string, dto interface{}) error {
	body, err := json.Marshal(dto)
	if err != nil {
		adapterLogger.Error("Failed to marshal event body", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal %s: %w", eventType, err)
	}

	if err := contracts.ValidateEvent(eventType, "1.0.0", body); err != nil {
		adapterLogger.Error("Event body failed schema validation", err, nil)
		return fmt.Errorf("rabbitmq adapter: %s failed schema validation: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Info("Publishing event", nil)
	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", eventType, err)
	}

	adapterLogger.Info("Successfully published event", nil)
	return nil
}
