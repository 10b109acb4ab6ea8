// Package constants holds shared literal values used across layers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// DispatchProviderLog writes alerts to the process log only.
	DispatchProviderLog = "log"
	// DispatchProviderFirebase delivers alerts as FCM push messages.
	DispatchProviderFirebase = "firebase"
)
