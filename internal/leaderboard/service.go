package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"dropz-server/internal/clients/redis"
	"dropz-server/internal/observability"
	"dropz-server/internal/store"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var ErrWalletNotRanked = errors.New("wallet not present in leaderboard")

const keyTTL = 5 * time.Minute

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=leaderboard

// ParticipantStore provides the participant rows the leaderboard is built from.
type ParticipantStore interface {
	ListParticipants(ctx context.Context, airdropID uuid.UUID) ([]store.Participant, error)
}

// Service ranks an airdrop's participants by total earnings. Rankings are
// served from a Redis sorted set rebuilt from PostgreSQL when the key is
// missing or expired; the database stays the source of truth.
type Service struct {
	redis  *redis.Client
	store  ParticipantStore
	logger *observability.Logger
}

// Entry is one wallet's position in an airdrop leaderboard
type Entry struct {
	Wallet         string  `json:"wallet"`
	Rank           int     `json:"rank"`
	Score          float64 `json:"score"`
	TasksCompleted int     `json:"tasks_completed,omitempty"`
}

func NewService(redis *redis.Client, store ParticipantStore, logger *observability.Logger) Service {
	return Service{
		redis:  redis,
		store:  store,
		logger: logger,
	}
}

// buildKey creates the Redis key for one airdrop's board
// Format: lb:{airdrop_id}
func buildKey(airdropID uuid.UUID) string {
	return fmt.Sprintf("lb:%s", airdropID.String())
}

// scoreOf converts a participant's earnings to a sortable score. Precision
// loss past float64 resolution only affects display ordering between wallets
// with near-identical earnings, never the stored balances.
func scoreOf(p store.Participant) float64 {
	score, _ := new(big.Float).SetInt(&p.TotalEarnings.Int).Float64()
	return score
}

// GetTop returns the top N wallets of an airdrop ordered by total earnings.
// Without Redis it falls back to ranking directly from PostgreSQL.
func (s *Service) GetTop(ctx context.Context, airdropID uuid.UUID, limit int) ([]Entry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "airdrop_id", Value: airdropID.String()},
		observability.Field{Key: "limit", Value: limit},
	)

	if s.redis == nil || !s.redis.IsEnabled() {
		return s.topFromDatabase(ctx, airdropID, limit)
	}

	key := buildKey(airdropID)
	count, err := s.redis.ZCard(ctx, key)
	if err != nil {
		s.logger.InfoWithError(ctx, "Redis unavailable, ranking from database", err)
		return s.topFromDatabase(ctx, airdropID, limit)
	}
	if count == 0 {
		if err := s.rebuild(ctx, airdropID); err != nil {
			s.logger.InfoWithError(ctx, "failed to rebuild leaderboard, ranking from database", err)
			return s.topFromDatabase(ctx, airdropID, limit)
		}
	}

	results, err := s.redis.ZRevRangeWithScores(ctx, key, 0, int64(limit-1))
	if err != nil {
		s.logger.Error(ctx, "failed to read leaderboard from Redis", err)
		return nil, fmt.Errorf("failed to get top wallets: %w", err)
	}

	entries := make([]Entry, len(results))
	for i, result := range results {
		entries[i] = Entry{
			Wallet: result.Member.(string),
			Score:  result.Score,
			Rank:   i + 1,
		}
	}
	return entries, nil
}

// GetRank returns one wallet's 1-indexed position in an airdrop's board
func (s *Service) GetRank(ctx context.Context, airdropID uuid.UUID, wallet string) (Entry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "airdrop_id", Value: airdropID.String()},
		observability.Field{Key: "wallet", Value: wallet},
	)

	if s.redis == nil || !s.redis.IsEnabled() {
		return s.rankFromDatabase(ctx, airdropID, wallet)
	}

	key := buildKey(airdropID)
	count, err := s.redis.ZCard(ctx, key)
	if err != nil {
		s.logger.InfoWithError(ctx, "Redis unavailable, ranking from database", err)
		return s.rankFromDatabase(ctx, airdropID, wallet)
	}
	if count == 0 {
		if err := s.rebuild(ctx, airdropID); err != nil {
			s.logger.InfoWithError(ctx, "failed to rebuild leaderboard, ranking from database", err)
			return s.rankFromDatabase(ctx, airdropID, wallet)
		}
	}

	rank, err := s.redis.ZRevRank(ctx, key, wallet)
	if errors.Is(err, goredis.Nil) {
		return Entry{}, ErrWalletNotRanked
	}
	if err != nil {
		s.logger.Error(ctx, "failed to get rank from Redis", err)
		return Entry{}, fmt.Errorf("failed to get rank: %w", err)
	}

	score, err := s.redis.ZScore(ctx, key, wallet)
	if err != nil && !errors.Is(err, goredis.Nil) {
		s.logger.Error(ctx, "failed to get score from Redis", err)
		return Entry{}, fmt.Errorf("failed to get score: %w", err)
	}

	return Entry{Wallet: wallet, Rank: int(rank) + 1, Score: score}, nil
}

// Invalidate drops an airdrop's cached board so the next read rebuilds it
func (s *Service) Invalidate(ctx context.Context, airdropID uuid.UUID) {
	if s.redis == nil || !s.redis.IsEnabled() {
		return
	}
	if err := s.redis.Del(ctx, buildKey(airdropID)); err != nil {
		s.logger.InfoWithError(ctx, "failed to invalidate leaderboard key", err)
	}
}

// rebuild populates the Redis board from PostgreSQL
func (s *Service) rebuild(ctx context.Context, airdropID uuid.UUID) error {
	participants, err := s.store.ListParticipants(ctx, airdropID)
	if err != nil {
		return fmt.Errorf("failed to list participants: %w", err)
	}
	if len(participants) == 0 {
		return nil
	}

	members := make([]goredis.Z, len(participants))
	for i, p := range participants {
		members[i] = goredis.Z{
			Score:  scoreOf(p),
			Member: p.Wallet,
		}
	}

	key := buildKey(airdropID)
	if err := s.redis.ZAdd(ctx, key, members...); err != nil {
		return fmt.Errorf("failed to populate leaderboard: %w", err)
	}
	if err := s.redis.Expire(ctx, key, keyTTL); err != nil {
		s.logger.InfoWithError(ctx, "failed to set expiration on leaderboard key", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "participant_count", Value: len(participants)},
	)
	s.logger.Info(ctx, "rebuilt leaderboard from database")
	return nil
}

// topFromDatabase ranks directly from PostgreSQL rows
func (s *Service) topFromDatabase(ctx context.Context, airdropID uuid.UUID, limit int) ([]Entry, error) {
	ranked, err := s.rankedParticipants(ctx, airdropID)
	if err != nil {
		return nil, err
	}
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *Service) rankFromDatabase(ctx context.Context, airdropID uuid.UUID, wallet string) (Entry, error) {
	ranked, err := s.rankedParticipants(ctx, airdropID)
	if err != nil {
		return Entry{}, err
	}
	for _, entry := range ranked {
		if entry.Wallet == wallet {
			return entry, nil
		}
	}
	return Entry{}, ErrWalletNotRanked
}

func (s *Service) rankedParticipants(ctx context.Context, airdropID uuid.UUID) ([]Entry, error) {
	participants, err := s.store.ListParticipants(ctx, airdropID)
	if err != nil {
		s.logger.Error(ctx, "failed to list participants", err)
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	// Exact ordering on the big integers, not on float scores.
	sortParticipantsByEarnings(participants)

	entries := make([]Entry, len(participants))
	for i, p := range participants {
		entries[i] = Entry{
			Wallet:         p.Wallet,
			Rank:           i + 1,
			Score:          scoreOf(p),
			TasksCompleted: p.TasksCompleted,
		}
	}
	return entries, nil
}

func sortParticipantsByEarnings(participants []store.Participant) {
	slices.SortFunc(participants, func(a, b store.Participant) int {
		return b.TotalEarnings.Int.Cmp(&a.TotalEarnings.Int)
	})
}
