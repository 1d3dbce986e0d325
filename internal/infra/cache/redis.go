package cache

import (
	"context"
	"time"

	"erpgate/internal/domain/service"
	"erpgate/internal/errors"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps entries in Redis so every gateway replica shares one cache.
type redisStore struct {
	client redis.UniversalClient
	prefix string
}

func (s *redisStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	return value, true, nil
}

func (s *redisStore) set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.WithStack(s.client.Set(ctx, s.prefix+key, value, ttl).Err())
}

func (s *redisStore) del(ctx context.Context, key string) error {
	return errors.WithStack(s.client.Del(ctx, s.prefix+key).Err())
}

// NewRedisCache returns a session cache stored in Redis under keyPrefix.
func NewRedisCache(client redis.UniversalClient, keyPrefix string, ttl time.Duration) service.SessionCache {
	return newTTLCache(&redisStore{client: client, prefix: keyPrefix}, ttl)
}
