package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const participantColumns = `id, airdrop_id, wallet, completed_tasks, tasks_completed, tasks_earnings, checkin_dates, checkins_completed, checkins_earnings, total_earnings, has_claimed, last_claimed_at, merkle_proof, joined_at, updated_at`

const sqlInsertParticipant = `
INSERT INTO airdrop_participants (airdrop_id, wallet)
VALUES ($1, $2)
ON CONFLICT (airdrop_id, wallet) DO NOTHING
RETURNING ` + participantColumns

const sqlRegisterParticipantOnAirdrop = `
UPDATE airdrops
SET participants = array_append(participants, $2),
    participants_count = participants_count + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// JoinAirdrop enrolls a wallet in a campaign. The enrollment and the
// campaign's participant roster move in one transaction. When the wallet is
// already enrolled the existing row is returned and joined is false.
func (s *Store) JoinAirdrop(ctx context.Context, airdropID uuid.UUID, wallet string) (participant Participant, joined bool, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin join transaction", err)
		return Participant{}, false, fmt.Errorf("failed to begin join transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.Error(ctx, "failed to rollback join transaction", rbErr)
			}
		}
	}()

	err = tx.GetContext(ctx, &participant, sqlInsertParticipant, airdropID, wallet)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Conflict path: the wallet joined before. Hand back the
			// existing row without touching the roster.
			err = tx.GetContext(ctx, &participant, sqlGetParticipant, airdropID, wallet)
			if err != nil {
				s.logger.Error(ctx, "failed to get existing participant", err)
				return Participant{}, false, fmt.Errorf("failed to get existing participant: %w", err)
			}
			if err = tx.Commit(); err != nil {
				s.logger.Error(ctx, "failed to commit join transaction", err)
				return Participant{}, false, fmt.Errorf("failed to commit join transaction: %w", err)
			}
			return participant, false, nil
		}
		s.logger.Error(ctx, "failed to insert participant", err)
		return Participant{}, false, fmt.Errorf("failed to insert participant: %w", err)
	}

	if _, err = tx.ExecContext(ctx, sqlRegisterParticipantOnAirdrop, airdropID, wallet); err != nil {
		s.logger.Error(ctx, "failed to register participant on airdrop", err)
		return Participant{}, false, fmt.Errorf("failed to register participant on airdrop: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit join transaction", err)
		return Participant{}, false, fmt.Errorf("failed to commit join transaction: %w", err)
	}
	return participant, true, nil
}

const sqlGetParticipant = `
SELECT ` + participantColumns + `
FROM airdrop_participants
WHERE airdrop_id = $1 AND wallet = $2
`

// GetParticipant retrieves one wallet's state within a campaign
func (s *Store) GetParticipant(ctx context.Context, airdropID uuid.UUID, wallet string) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlGetParticipant, airdropID, wallet)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get participant", err)
		return Participant{}, fmt.Errorf("failed to get participant: %w", err)
	}
	return participant, nil
}

const sqlListParticipants = `
SELECT ` + participantColumns + `
FROM airdrop_participants
WHERE airdrop_id = $1
ORDER BY joined_at ASC
`

// ListParticipants retrieves every participant of a campaign in join order
func (s *Store) ListParticipants(ctx context.Context, airdropID uuid.UUID) ([]Participant, error) {
	var participants []Participant
	err := s.db.SelectContext(ctx, &participants, sqlListParticipants, airdropID)
	if err != nil {
		s.logger.Error(ctx, "failed to list participants", err)
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// The task guard rejects the write when the task id is already present, so a
// concurrent duplicate completion cannot double-credit. total_earnings is
// recomputed from its constituents inside the same statement.
const sqlCompleteTask = `
UPDATE airdrop_participants
SET completed_tasks = array_append(completed_tasks, $3),
    tasks_completed = tasks_completed + 1,
    tasks_earnings = tasks_earnings + $4::numeric,
    total_earnings = checkins_earnings + tasks_earnings + $4::numeric,
    updated_at = CURRENT_TIMESTAMP
WHERE airdrop_id = $1 AND wallet = $2
  AND NOT (completed_tasks @> ARRAY[$3::text])
RETURNING ` + participantColumns

// CompleteTask credits a task reward once per task id. Returns ErrConflict
// when the task is already recorded for the wallet.
func (s *Store) CompleteTask(ctx context.Context, airdropID uuid.UUID, wallet, taskID string, reward BigAmount) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlCompleteTask, airdropID, wallet, taskID, reward)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to complete task", err)
		return Participant{}, fmt.Errorf("failed to complete task: %w", err)
	}
	return participant, nil
}

// The check-in guard compares UTC calendar days, so one check-in per day
// means one per UTC day regardless of the caller's timezone.
const sqlAddCheckin = `
UPDATE airdrop_participants
SET checkin_dates = array_append(checkin_dates, $3),
    checkins_completed = checkins_completed + 1,
    checkins_earnings = checkins_earnings + $4::numeric,
    total_earnings = tasks_earnings + checkins_earnings + $4::numeric,
    updated_at = CURRENT_TIMESTAMP
WHERE airdrop_id = $1 AND wallet = $2
  AND NOT EXISTS (
      SELECT 1 FROM unnest(checkin_dates) AS d
      WHERE date_trunc('day', d AT TIME ZONE 'UTC') = date_trunc('day', $3::timestamptz AT TIME ZONE 'UTC')
  )
RETURNING ` + participantColumns

// AddCheckin credits a daily check-in reward at most once per UTC day.
// Returns ErrConflict when the wallet already checked in that day.
func (s *Store) AddCheckin(ctx context.Context, airdropID uuid.UUID, wallet string, at time.Time, reward BigAmount) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlAddCheckin, airdropID, wallet, at, reward)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to add checkin", err)
		return Participant{}, fmt.Errorf("failed to add checkin: %w", err)
	}
	return participant, nil
}

const sqlMarkClaimed = `
UPDATE airdrop_participants
SET has_claimed = TRUE,
    last_claimed_at = $3,
    merkle_proof = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE airdrop_id = $1 AND wallet = $2
  AND has_claimed = FALSE
  AND total_earnings > 0
RETURNING ` + participantColumns

const sqlDebitAirdropPool = `
UPDATE airdrops
SET total_distributed = total_distributed + $2::numeric,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
  AND total_distributed + $2::numeric <= total_amount
`

// ClaimEarnings settles a participant's accrued balance in one transaction:
// the participant row is marked claimed and the campaign pool is debited by
// the full accrued amount. The pool debit is guarded against exceeding
// total_amount; when the guard fails nothing is persisted and
// ErrInsufficientBalance is returned. A re-claim or a zero balance yields
// ErrConflict.
func (s *Store) ClaimEarnings(ctx context.Context, airdropID uuid.UUID, wallet string, claimedAt time.Time, merkleProof StringArray) (participant Participant, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin claim transaction", err)
		return Participant{}, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.Error(ctx, "failed to rollback claim transaction", rbErr)
			}
		}
	}()

	if merkleProof == nil {
		merkleProof = StringArray{}
	}
	err = tx.GetContext(ctx, &participant, sqlMarkClaimed, airdropID, wallet, claimedAt, merkleProof)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to mark participant claimed", err)
		return Participant{}, fmt.Errorf("failed to mark participant claimed: %w", err)
	}

	result, err := tx.ExecContext(ctx, sqlDebitAirdropPool, airdropID, participant.TotalEarnings)
	if err != nil {
		s.logger.Error(ctx, "failed to debit airdrop pool", err)
		return Participant{}, fmt.Errorf("failed to debit airdrop pool: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to read pool debit result", err)
		return Participant{}, fmt.Errorf("failed to read pool debit result: %w", err)
	}
	if affected == 0 {
		err = ErrInsufficientBalance
		return Participant{}, err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit claim transaction", err)
		return Participant{}, fmt.Errorf("failed to commit claim transaction: %w", err)
	}
	return participant, nil
}
