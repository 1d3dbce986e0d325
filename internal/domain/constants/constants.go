// Package constants holds identifiers shared across layers.
package constants

// Audit event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// SessionCacheKeyPrefix prefixes every login cache key.
const SessionCacheKeyPrefix = "odoo_session:"
