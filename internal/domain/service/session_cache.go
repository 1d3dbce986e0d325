package service

import "context"

// SessionCache stores serialized login results for a fixed time-to-live.
// Entries older than the TTL are reported as absent whatever the backing store still holds.
type SessionCache interface {
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)

	Set(ctx context.Context, key string, payload []byte) error

	Delete(ctx context.Context, key string) error
}
