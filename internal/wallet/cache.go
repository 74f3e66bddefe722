package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

const balanceKeyPrefix = "wallet:balance:"

// RedisCache is the durable balance layer, the storefront's stand-in for the
// browser's localStorage. Balances are stored as exact decimal strings.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, userID string) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, balanceKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("get cached balance: %w", err)
	}

	balance, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("parse cached balance: %w", err)
	}
	return balance, true, nil
}

func (c *RedisCache) Set(ctx context.Context, userID string, balance decimal.Decimal) error {
	if err := c.client.Set(ctx, balanceKeyPrefix+userID, balance.String(), 0).Err(); err != nil {
		return fmt.Errorf("set cached balance: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, balanceKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("delete cached balance: %w", err)
	}
	return nil
}
