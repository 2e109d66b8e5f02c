package bootstrap

import (
	"context"
	"fmt"

	"dropz-server/internal/config"
	"dropz-server/internal/observability"
	"dropz-server/internal/store"

	airdropHandler "dropz-server/internal/airdrop/handler"
	airdropProcessor "dropz-server/internal/airdrop/processor"
	authHandler "dropz-server/internal/auth/handler"
	authProcessor "dropz-server/internal/auth/processor"
	redisClient "dropz-server/internal/clients/redis"
	"dropz-server/internal/leaderboard"
	"dropz-server/internal/ratelimit"
	transactionsHandler "dropz-server/internal/transactions/handler"
	transactionsProcessor "dropz-server/internal/transactions/processor"
)

// writeRequestsPerMinute caps mutating requests per client IP.
const writeRequestsPerMinute = 60

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Redis  *redisClient.Client
	Logger *observability.Logger

	// Middleware
	RateLimiter *ratelimit.Service

	// Handlers
	AirdropHandler      airdropHandler.Handler
	TransactionsHandler transactionsHandler.Handler
	AuthHandler         authHandler.Handler
	LeaderboardHandler  leaderboard.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Transactions double as the ledger's audit sink.
	txProcessor := transactionsProcessor.New(&deps.Store, logger)
	deps.TransactionsHandler = transactionsHandler.New(txProcessor, logger)

	ledger := airdropProcessor.New(&deps.Store, &txProcessor, logger)
	deps.AirdropHandler = airdropHandler.New(ledger, logger)

	auth := authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(auth, logger)

	// Redis is optional; the leaderboard and rate limiter degrade without it.
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.Redis, writeRequestsPerMinute, logger)

	board := leaderboard.NewService(deps.Redis, &deps.Store, logger)
	deps.LeaderboardHandler = leaderboard.NewHandler(board, logger)

	logger.Info(ctx, "dependencies initialized")
	return deps, nil
}

// Cleanup releases held resources
func (d *Dependencies) Cleanup() {
	if db := d.Store.DB(); db != nil {
		_ = db.Close()
	}
	_ = d.Redis.Close()
}
