// Package cache provides the session cache backends behind service.SessionCache.
package cache

import (
	"context"
	"encoding/binary"
	"time"

	"erpgate/internal/domain/service"
	"erpgate/internal/errors"
)

// deadlineSize is the length of the big-endian unix-nano deadline prefixed to every stored value.
const deadlineSize = 8

// store is a raw byte store. The ttl passed to set is advisory; expiry is enforced by ttlCache.
type store interface {
	get(ctx context.Context, key string) ([]byte, bool, error)
	set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	del(ctx context.Context, key string) error
}

// ttlCache stamps each entry with its own deadline, so an entry outliving its TTL in the
// backing store (clock skew, eviction lag, a reconfigured TTL) is still reported as absent.
type ttlCache struct {
	store store
	ttl   time.Duration
	now   func() time.Time
}

func newTTLCache(s store, ttl time.Duration) *ttlCache {
	return &ttlCache{store: s, ttl: ttl, now: time.Now}
}

var _ service.SessionCache = (*ttlCache)(nil)

func (c *ttlCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, found, err := c.store.get(ctx, key)
	if err != nil {
		return nil, false, errors.Wrapf(err, "session cache get %s", key)
	}
	if !found || len(raw) < deadlineSize {
		return nil, false, nil
	}

	deadline := time.Unix(0, int64(binary.BigEndian.Uint64(raw[:deadlineSize])))
	if !c.now().Before(deadline) {
		return nil, false, nil
	}

	payload := make([]byte, len(raw)-deadlineSize)
	copy(payload, raw[deadlineSize:])

	return payload, true, nil
}

func (c *ttlCache) Set(ctx context.Context, key string, payload []byte) error {
	deadline := c.now().Add(c.ttl)

	raw := make([]byte, deadlineSize+len(payload))
	binary.BigEndian.PutUint64(raw[:deadlineSize], uint64(deadline.UnixNano()))
	copy(raw[deadlineSize:], payload)

	if err := c.store.set(ctx, key, raw, c.ttl); err != nil {
		return errors.Wrapf(err, "session cache set %s", key)
	}

	return nil
}

func (c *ttlCache) Delete(ctx context.Context, key string) error {
	if err := c.store.del(ctx, key); err != nil {
		return errors.Wrapf(err, "session cache delete %s", key)
	}

	return nil
}
