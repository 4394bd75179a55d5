// Package constants holds values shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNone   = "none"
)

// Side effect names used in logs and metrics.
const (
	SideEffectEvent       = "inquiry_event"
	SideEffectAttribution = "attribution_log"
)

// Default pagination bounds for list endpoints.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// DefaultConsultationLocation is stored as installLocation for consultations without a location.
const DefaultConsultationLocation = "상담 요청"
