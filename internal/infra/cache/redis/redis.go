// Package redis caches hot read paths of the matcher in Redis.
package redis

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/lifecycle"
	"lostfound/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis client, or nil when no redis section is configured.
func New(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if !cfg.Enabled() {
		params.Logger.Info("Redis is not configured; recent listing window is read from the store on every request")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "failed to ping redis at %s", cfg.Address)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
