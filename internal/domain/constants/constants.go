// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted in configuration.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// PushTitle is the title of every reminder push notification.
const PushTitle = "Meal Reminder"

// Push payload keys.
const (
	PushDataMessage  = "message"
	PushDataCategory = "category"
)
