package ratelimit

import (
	"context"
	"fmt"
	"time"

	"dropz-server/internal/clients/redis"
	"dropz-server/internal/observability"

	goredis "github.com/redis/go-redis/v9"
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service throttles write requests per caller using a sliding one-minute
// window backed by a Redis sorted set. When Redis is disabled every request
// is allowed.
type Service struct {
	redis  *redis.Client
	limit  int
	logger *observability.Logger
}

// NewService creates a new rate limiting service
func NewService(redis *redis.Client, requestsPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  requestsPerMinute,
		logger: logger,
	}
}

// Check records one request for the caller and reports whether it is within
// the per-minute limit.
func (s *Service) Check(ctx context.Context, caller string) (Result, error) {
	if s.redis == nil || !s.redis.IsEnabled() {
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "caller", Value: caller},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	// Sliding window over a Redis sorted set.
	// Key: rl:{caller}, members and scores are request timestamps in ms.
	key := fmt.Sprintf("rl:%s", caller)
	now := time.Now()
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-1 * time.Minute).UnixMilli()

	// Drop entries outside the window.
	err := s.redis.GetClient().ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs)).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.redis.ZCard(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		oldest, err := s.redis.GetClient().ZRange(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return Result{
				Allowed:      false,
				Limit:        s.limit,
				Remaining:    0,
				ResetAt:      now.Add(1 * time.Minute),
				RetryAfterMs: 60000,
			}, nil
		}

		var oldestTs int64
		fmt.Sscanf(oldest[0], "%d", &oldestTs)
		retryAfter := time.UnixMilli(oldestTs).Add(1 * time.Minute).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}

		return Result{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      time.UnixMilli(oldestTs).Add(1 * time.Minute),
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	err = s.redis.GetClient().ZAdd(ctx, key, goredis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d", nowMs),
	}).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := s.redis.Expire(ctx, key, 2*time.Minute); err != nil {
		s.logger.InfoWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(1 * time.Minute),
	}, nil
}
