package constants

// RabbitMQ topology shared with downstream consumers (notification sender,
// search indexer).
const (
	ExchangeName = "classifieds_exchange"
	ExchangeType = "direct"

	RoutingKeyPropertyUpserted = "property.upserted.v1"
	RoutingKeyUserSuspended    = "user.suspended.v1"
)
