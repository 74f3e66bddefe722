package storage

import (
	"context"
	"fmt"
	"time"

	"rental-storefront/internal/config"

	"github.com/go-redis/redis/v8"
)

// NewClient connects the durable client-side store. Session identity and the
// cached wallet balance live here so they survive a process restart the way
// the browser build survived a page reload.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
