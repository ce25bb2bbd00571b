// Package constants holds shared domain-level constants.
package constants

// Mail dispatch providers selectable through configuration.
const (
	// MailProviderNoop drops events; the default when dispatch is not configured.
	MailProviderNoop = "noop"
	// MailProviderLocal posts Pub/Sub-style push envelopes to a local HTTP endpoint.
	MailProviderLocal = "local"
	// MailProviderGoogle publishes to a Google Cloud Pub/Sub topic.
	MailProviderGoogle = "google"
)

// Runtime environments recognized in configuration.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// HistoryMax is the cap on a user's recently-viewed list: only the five most
// recent SKUs are kept.
const HistoryMax = 5
