// Package constants holds shared application-level constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal routes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// DefaultCategory is assigned to notifications sent without one.
	DefaultCategory = "general"

	// RecentNotificationLimit caps the live recent-notification view.
	RecentNotificationLimit = 10
)
