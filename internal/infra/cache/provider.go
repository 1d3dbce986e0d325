package cache

import (
	"context"
	"log/slog"
	"strings"

	"erpgate/config"
	"erpgate/internal/domain/lifecycle"
	"erpgate/internal/domain/service"
	"erpgate/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

// Params defines the dependencies of the session cache provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewSessionCache builds the configured session cache backend.
func NewSessionCache(params Params) (service.SessionCache, error) {
	cfg := params.Config.SessionCache
	if cfg == nil {
		return nil, errors.New("sessionCache config is missing")
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderMemory, "":
		params.Logger.Info("Using in-process session cache",
			slog.Int("capacity", cfg.Capacity),
			slog.Duration("ttl", cfg.TTL),
		)

		return NewMemoryCache(cfg.Capacity, cfg.TTL), nil

	case ProviderRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		params.Logger.Info("Using redis session cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.Duration("ttl", cfg.TTL),
		)

		return NewRedisCache(client, cfg.Redis.KeyPrefix, cfg.TTL), nil

	default:
		return nil, errors.Errorf("unknown session cache provider: %s", cfg.Provider)
	}
}
