package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateAirdropParams represents parameters for creating an airdrop campaign
type CreateAirdropParams struct {
	Owner               string
	Name                string
	TokenAddress        string
	TotalAmount         BigAmount
	Tasks               TaskList
	TaskRewardAmount    BigAmount
	CheckinRewardAmount BigAmount
	Status              string
	Metadata            JSONB
	ExpiresAt           *time.Time
}

const airdropColumns = `id, owner, name, token_address, total_amount, tasks, task_reward_amount, checkin_reward_amount, status, total_distributed, participants_count, total_tasks_completed, total_checkins_completed, participants, metadata, expires_at, created_at, updated_at`

const sqlCreateAirdrop = `
INSERT INTO airdrops (owner, name, token_address, total_amount, tasks, task_reward_amount, checkin_reward_amount, status, metadata, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + airdropColumns

// CreateAirdrop creates a new airdrop campaign with zeroed counters
func (s *Store) CreateAirdrop(ctx context.Context, params CreateAirdropParams) (Airdrop, error) {
	var airdrop Airdrop
	err := s.db.GetContext(ctx, &airdrop, sqlCreateAirdrop,
		params.Owner,
		params.Name,
		params.TokenAddress,
		params.TotalAmount,
		params.Tasks,
		params.TaskRewardAmount,
		params.CheckinRewardAmount,
		params.Status,
		params.Metadata,
		params.ExpiresAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create airdrop", err)
		return Airdrop{}, fmt.Errorf("failed to create airdrop: %w", err)
	}
	return airdrop, nil
}

const sqlGetAirdropByID = `
SELECT ` + airdropColumns + `
FROM airdrops
WHERE id = $1
`

// GetAirdropByID retrieves an airdrop by ID
func (s *Store) GetAirdropByID(ctx context.Context, airdropID uuid.UUID) (Airdrop, error) {
	var airdrop Airdrop
	err := s.db.GetContext(ctx, &airdrop, sqlGetAirdropByID, airdropID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Airdrop{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get airdrop by id", err)
		return Airdrop{}, fmt.Errorf("failed to get airdrop by id: %w", err)
	}
	return airdrop, nil
}

const sqlListAirdrops = `
SELECT ` + airdropColumns + `
FROM airdrops
ORDER BY created_at DESC
`

// ListAirdrops retrieves all airdrop campaigns, newest first
func (s *Store) ListAirdrops(ctx context.Context) ([]Airdrop, error) {
	var airdrops []Airdrop
	err := s.db.SelectContext(ctx, &airdrops, sqlListAirdrops)
	if err != nil {
		s.logger.Error(ctx, "failed to list airdrops", err)
		return nil, fmt.Errorf("failed to list airdrops: %w", err)
	}
	return airdrops, nil
}

const sqlGetAirdropsByOwner = `
SELECT ` + airdropColumns + `
FROM airdrops
WHERE owner = $1
ORDER BY created_at DESC
`

// GetAirdropsByOwner retrieves all campaigns created by one owner
func (s *Store) GetAirdropsByOwner(ctx context.Context, owner string) ([]Airdrop, error) {
	var airdrops []Airdrop
	err := s.db.SelectContext(ctx, &airdrops, sqlGetAirdropsByOwner, owner)
	if err != nil {
		s.logger.Error(ctx, "failed to get airdrops by owner", err)
		return nil, fmt.Errorf("failed to get airdrops by owner: %w", err)
	}
	return airdrops, nil
}

const sqlSearchAirdrops = `
SELECT ` + airdropColumns + `
FROM airdrops
WHERE name ILIKE '%' || $1 || '%'
ORDER BY created_at DESC
`

// SearchAirdrops retrieves campaigns whose name contains the query,
// case-insensitively
func (s *Store) SearchAirdrops(ctx context.Context, query string) ([]Airdrop, error) {
	var airdrops []Airdrop
	err := s.db.SelectContext(ctx, &airdrops, sqlSearchAirdrops, query)
	if err != nil {
		s.logger.Error(ctx, "failed to search airdrops", err)
		return nil, fmt.Errorf("failed to search airdrops: %w", err)
	}
	return airdrops, nil
}

const sqlUpdateAirdropStatus = `
UPDATE airdrops
SET status = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + airdropColumns

// UpdateAirdropStatus updates a campaign's status. Any status is reachable
// from any other; callers validate the value itself.
func (s *Store) UpdateAirdropStatus(ctx context.Context, airdropID uuid.UUID, status string) (Airdrop, error) {
	var airdrop Airdrop
	err := s.db.GetContext(ctx, &airdrop, sqlUpdateAirdropStatus, airdropID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Airdrop{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update airdrop status", err)
		return Airdrop{}, fmt.Errorf("failed to update airdrop status: %w", err)
	}
	return airdrop, nil
}

const sqlIncrementAirdropTasksCompleted = `
UPDATE airdrops
SET total_tasks_completed = total_tasks_completed + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// IncrementAirdropTasksCompleted increments the campaign-wide task counter
func (s *Store) IncrementAirdropTasksCompleted(ctx context.Context, airdropID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementAirdropTasksCompleted, airdropID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment airdrop tasks completed", err)
		return fmt.Errorf("failed to increment airdrop tasks completed: %w", err)
	}
	return nil
}

const sqlIncrementAirdropCheckinsCompleted = `
UPDATE airdrops
SET total_checkins_completed = total_checkins_completed + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// IncrementAirdropCheckinsCompleted increments the campaign-wide check-in counter
func (s *Store) IncrementAirdropCheckinsCompleted(ctx context.Context, airdropID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementAirdropCheckinsCompleted, airdropID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment airdrop checkins completed", err)
		return fmt.Errorf("failed to increment airdrop checkins completed: %w", err)
	}
	return nil
}
