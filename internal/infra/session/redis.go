// Package session provides the redis-backed persistence for guest carts.
package session

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"storefront/config"
)

// NewRedis connects to redis and verifies the connection.
func NewRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "redis ping failed")
	}

	return client, nil
}
