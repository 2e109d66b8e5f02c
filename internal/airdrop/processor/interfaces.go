package processor

import (
	"context"
	"time"

	"dropz-server/internal/store"

	"github.com/google/uuid"
)

// AirdropStore defines the database operations required by AirdropProcessor
type AirdropStore interface {
	CreateAirdrop(ctx context.Context, params store.CreateAirdropParams) (store.Airdrop, error)
	GetAirdropByID(ctx context.Context, airdropID uuid.UUID) (store.Airdrop, error)
	ListAirdrops(ctx context.Context) ([]store.Airdrop, error)
	GetAirdropsByOwner(ctx context.Context, owner string) ([]store.Airdrop, error)
	SearchAirdrops(ctx context.Context, query string) ([]store.Airdrop, error)
	UpdateAirdropStatus(ctx context.Context, airdropID uuid.UUID, status string) (store.Airdrop, error)
	IncrementAirdropTasksCompleted(ctx context.Context, airdropID uuid.UUID) error
	IncrementAirdropCheckinsCompleted(ctx context.Context, airdropID uuid.UUID) error
	JoinAirdrop(ctx context.Context, airdropID uuid.UUID, wallet string) (store.Participant, bool, error)
	GetParticipant(ctx context.Context, airdropID uuid.UUID, wallet string) (store.Participant, error)
	ListParticipants(ctx context.Context, airdropID uuid.UUID) ([]store.Participant, error)
	CompleteTask(ctx context.Context, airdropID uuid.UUID, wallet, taskID string, reward store.BigAmount) (store.Participant, error)
	AddCheckin(ctx context.Context, airdropID uuid.UUID, wallet string, at time.Time, reward store.BigAmount) (store.Participant, error)
	ClaimEarnings(ctx context.Context, airdropID uuid.UUID, wallet string, claimedAt time.Time, merkleProof store.StringArray) (store.Participant, error)
}

// AuditSink records token-movement audit entries. Audit failures never fail
// the ledger operation that triggered them.
type AuditSink interface {
	RecordTransaction(ctx context.Context, params store.CreateTransactionParams) (store.Transaction, error)
}
