package redis

import (
	"context"
	"fmt"
	"time"

	"dropz-server/internal/config"
	"dropz-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ZAdd adds members with scores to a sorted set
func (c *Client) ZAdd(ctx context.Context, key string, members ...redis.Z) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return c.client.ZAdd(ctx, key, members...).Err()
}

// ZRevRank returns the rank of a member in a sorted set (descending order)
func (c *Client) ZRevRank(ctx context.Context, key, member string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, fmt.Errorf("Redis client not initialized")
	}
	return c.client.ZRevRank(ctx, key, member).Result()
}

// ZScore returns the score of a member in a sorted set
func (c *Client) ZScore(ctx context.Context, key, member string) (float64, error) {
	if c == nil || c.client == nil {
		return 0, fmt.Errorf("Redis client not initialized")
	}
	return c.client.ZScore(ctx, key, member).Result()
}

// ZRevRangeWithScores returns members with scores in a sorted set (descending)
func (c *Client) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("Redis client not initialized")
	}
	return c.client.ZRevRangeWithScores(ctx, key, start, stop).Result()
}

// ZCard returns the number of members in a sorted set
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, fmt.Errorf("Redis client not initialized")
	}
	return c.client.ZCard(ctx, key).Result()
}

// ZRem removes members from a sorted set
func (c *Client) ZRem(ctx context.Context, key string, members ...interface{}) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return c.client.ZRem(ctx, key, members...).Err()
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return c.client.Del(ctx, keys...).Err()
}

// Expire sets an expiration on a key
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return c.client.Expire(ctx, key, expiration).Err()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}
