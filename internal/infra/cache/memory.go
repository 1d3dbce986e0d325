package cache

import (
	"context"
	"time"

	"erpgate/internal/domain/service"

	"github.com/viccon/sturdyc"
)

const (
	memoryShards             = 10
	memoryEvictionPercentage = 10
)

// memoryStore keeps entries in an in-process sturdyc client.
type memoryStore struct {
	client *sturdyc.Client[[]byte]
}

func newMemoryStore(capacity int, ttl time.Duration) *memoryStore {
	return &memoryStore{
		client: sturdyc.New[[]byte](capacity, memoryShards, ttl, memoryEvictionPercentage),
	}
}

func (s *memoryStore) get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := s.client.Get(key)

	return value, ok, nil
}

func (s *memoryStore) set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.client.Set(key, value)

	return nil
}

func (s *memoryStore) del(_ context.Context, key string) error {
	s.client.Delete(key)

	return nil
}

// NewMemoryCache returns an in-process session cache.
func NewMemoryCache(capacity int, ttl time.Duration) service.SessionCache {
	return newTTLCache(newMemoryStore(capacity, ttl), ttl)
}
