// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage backends.
const (
	StorageBackendMongo    = "mongo"
	StorageBackendPostgres = "postgres"
	StorageBackendBolt     = "bolt"
)

// Storefront modes.
const (
	StorefrontModeLocal  = "local"
	StorefrontModeRemote = "remote"
)

// Order event types.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)
