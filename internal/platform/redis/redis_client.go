// Package redis constructs the Redis client backing the session store.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"twitchplanner/internal/platform/config"
)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.RedisAddr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr)
	return rdb, nil
}
