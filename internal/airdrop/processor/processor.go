package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"dropz-server/internal/metrics"
	"dropz-server/internal/observability"
	"dropz-server/internal/store"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

var (
	ErrAirdropNotFound       = errors.New("airdrop not found")
	ErrParticipantNotFound   = errors.New("participant not found, join first")
	ErrTaskAlreadyCompleted  = errors.New("task already completed")
	ErrAlreadyCheckedInToday = errors.New("already checked in today")
	ErrAlreadyClaimed        = errors.New("earnings already claimed")
	ErrNothingToClaim        = errors.New("nothing to claim")
	ErrInsufficientBalance   = errors.New("insufficient pool balance")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidStatus         = errors.New("invalid airdrop status")
	ErrInvalidTaskKind       = errors.New("invalid task kind")
	ErrInvalidAddress        = errors.New("invalid ethereum address")
)

// Default per-event rewards in wei: 0.3 tokens per task, 0.1 per check-in.
const (
	defaultTaskReward    = "300000000000000000"
	defaultCheckinReward = "100000000000000000"
)

type AirdropProcessor struct {
	store  AirdropStore
	audit  AuditSink
	logger *observability.Logger
}

func New(store AirdropStore, audit AuditSink, logger *observability.Logger) AirdropProcessor {
	return AirdropProcessor{
		store:  store,
		audit:  audit,
		logger: logger,
	}
}

// CreateAirdropRequest represents a request to create an airdrop campaign
type CreateAirdropRequest struct {
	Owner               string
	Name                string
	TokenAddress        string
	TotalAmount         string
	Tasks               []store.Task
	TaskRewardAmount    *string
	CheckinRewardAmount *string
	Metadata            store.JSONB
	ExpiresAt           *time.Time
}

// CreateAirdrop creates a new campaign with defaulted reward rates and an
// active status, and emits a CREATE audit record.
func (p *AirdropProcessor) CreateAirdrop(ctx context.Context, req CreateAirdropRequest) (store.Airdrop, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner", Value: req.Owner},
		observability.Field{Key: "airdrop_name", Value: req.Name},
	)

	if !common.IsHexAddress(req.Owner) {
		return store.Airdrop{}, ErrInvalidAddress
	}
	if !common.IsHexAddress(req.TokenAddress) {
		return store.Airdrop{}, ErrInvalidAddress
	}
	// Addresses are stored lowercase so checksummed and lowercased
	// renditions resolve to the same identity.
	owner := strings.ToLower(req.Owner)

	totalAmount, err := store.NewBigAmount(req.TotalAmount)
	if err != nil {
		return store.Airdrop{}, ErrInvalidAmount
	}

	taskReward, err := store.NewBigAmount(valueOrDefault(req.TaskRewardAmount, defaultTaskReward))
	if err != nil {
		return store.Airdrop{}, ErrInvalidAmount
	}
	checkinReward, err := store.NewBigAmount(valueOrDefault(req.CheckinRewardAmount, defaultCheckinReward))
	if err != nil {
		return store.Airdrop{}, ErrInvalidAmount
	}

	tasks := make(store.TaskList, 0, len(req.Tasks))
	for _, task := range req.Tasks {
		if !isValidTaskKind(task.Kind) {
			return store.Airdrop{}, ErrInvalidTaskKind
		}
		if task.ID == "" {
			task.ID = uuid.New().String()
		}
		tasks = append(tasks, task)
	}

	params := store.CreateAirdropParams{
		Owner:               owner,
		Name:                req.Name,
		TokenAddress:        req.TokenAddress,
		TotalAmount:         totalAmount,
		Tasks:               tasks,
		TaskRewardAmount:    taskReward,
		CheckinRewardAmount: checkinReward,
		Status:              store.AirdropStatusActive,
		Metadata:            req.Metadata,
		ExpiresAt:           req.ExpiresAt,
	}

	airdrop, err := p.store.CreateAirdrop(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create airdrop", err)
		return store.Airdrop{}, err
	}

	tokenName := airdrop.Name
	if _, auditErr := p.audit.RecordTransaction(ctx, store.CreateTransactionParams{
		Wallet:    airdrop.Owner,
		Type:      store.TransactionTypeCreate,
		Amount:    airdrop.TotalAmount,
		TokenName: &tokenName,
		Status:    store.TransactionStatusSuccess,
	}); auditErr != nil {
		p.logger.Error(ctx, "failed to record create transaction", auditErr)
	}

	p.logger.Info(ctx, "airdrop created successfully")
	return airdrop, nil
}

// GetAirdrop retrieves a campaign by ID
func (p *AirdropProcessor) GetAirdrop(ctx context.Context, airdropID uuid.UUID) (store.Airdrop, error) {
	airdrop, err := p.store.GetAirdropByID(ctx, airdropID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Airdrop{}, ErrAirdropNotFound
		}
		p.logger.Error(ctx, "failed to get airdrop", err)
		return store.Airdrop{}, err
	}
	return airdrop, nil
}

// ListAirdrops retrieves all campaigns
func (p *AirdropProcessor) ListAirdrops(ctx context.Context) ([]store.Airdrop, error) {
	airdrops, err := p.store.ListAirdrops(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list airdrops", err)
		return nil, err
	}
	return airdrops, nil
}

// GetAirdropsByOwner retrieves all campaigns created by one owner
func (p *AirdropProcessor) GetAirdropsByOwner(ctx context.Context, owner string) ([]store.Airdrop, error) {
	if !common.IsHexAddress(owner) {
		return nil, ErrInvalidAddress
	}
	airdrops, err := p.store.GetAirdropsByOwner(ctx, strings.ToLower(owner))
	if err != nil {
		p.logger.Error(ctx, "failed to get airdrops by owner", err)
		return nil, err
	}
	return airdrops, nil
}

// SearchAirdrops retrieves campaigns matching a name substring
func (p *AirdropProcessor) SearchAirdrops(ctx context.Context, query string) ([]store.Airdrop, error) {
	airdrops, err := p.store.SearchAirdrops(ctx, query)
	if err != nil {
		p.logger.Error(ctx, "failed to search airdrops", err)
		return nil, err
	}
	return airdrops, nil
}

// UpdateStatus moves a campaign to a new status. Any transition between the
// known statuses is permitted.
func (p *AirdropProcessor) UpdateStatus(ctx context.Context, airdropID uuid.UUID, status string) (store.Airdrop, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "airdrop_id", Value: airdropID.String()},
		observability.Field{Key: "status", Value: status},
	)

	if !isValidStatus(status) {
		return store.Airdrop{}, ErrInvalidStatus
	}

	airdrop, err := p.store.UpdateAirdropStatus(ctx, airdropID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Airdrop{}, ErrAirdropNotFound
		}
		p.logger.Error(ctx, "failed to update airdrop status", err)
		return store.Airdrop{}, err
	}

	p.logger.Info(ctx, "airdrop status updated")
	return airdrop, nil
}

// Join enrolls a wallet in a campaign. Joining twice is a no-op that returns
// the existing participant.
func (p *AirdropProcessor) Join(ctx context.Context, airdropID uuid.UUID, wallet string) (store.Participant, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "airdrop_id", Value: airdropID.String()},
		observability.Field{Key: "wallet", Value: wallet},
	)

	if !common.IsHexAddress(wallet) {
		return store.Participant{}, ErrInvalidAddress
	}
	wallet = strings.ToLower(wallet)

	if _, err := p.store.GetAirdropByID(ctx, airdropID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrAirdropNotFound
		}
		p.logger.Error(ctx, "failed to get airdrop", err)
		return store.Participant{}, err
	}

	participant, joined, err := p.store.JoinAirdrop(ctx, airdropID, wallet)
	if err != nil {
		p.logger.Error(ctx, "failed to join airdrop", err)
		return store.Participant{}, err
	}

	if joined {
		p.logger.Info(ctx, "participant joined airdrop")
	}
	return participant, nil
}

// CompleteTask credits one task reward to a participant. The same task id is
// credited at most once per participant.
func (p *AirdropProcessor) CompleteTask(ctx context.Context, airdropID uuid.UUID, wallet, taskID string) (store.Participant, error) {
	start := time.Now()
	result := "failure"
	defer func() {
		metrics.RecordOperationDuration("complete_task", result, time.Since(start).Seconds())
	}()

	wallet = strings.ToLower(wallet)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "airdrop_id", Value: airdropID.String()},
		observability.Field{Key: "wallet", Value: wallet},
		observability.Field{Key: "task_id", Value: taskID},
	)

	airdrop, err := p.store.GetAirdropByID(ctx, airdropID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrAirdropNotFound
		}
		p.logger.Error(ctx, "failed to get airdrop", err)
		return store.Participant{}, err
	}

	participant, err := p.store.GetParticipant(ctx, airdropID, wallet)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return store.Participant{}, err
	}
	for _, completed := range participant.CompletedTasks {
		if completed == taskID {
			return store.Participant{}, ErrTaskAlreadyCompleted
		}
	}

	participant, err = p.store.CompleteTask(ctx, airdropID, wallet, taskID, airdrop.TaskRewardAmount)
	if err != nil {
		// A concurrent request may have claimed the task between the
		// read above and the guarded write.
		if errors.Is(err, store.ErrConflict) {
			return store.Participant{}, ErrTaskAlreadyCompleted
		}
		p.logger.Error(ctx, "failed to complete task", err)
		return store.Participant{}, err
	}

	if incErr := p.store.IncrementAirdropTasksCompleted(ctx, airdropID); incErr != nil {
		p.logger.Error(ctx, "failed to increment airdrop task counter", incErr)
	}

	result = "success"
	p.logger.Info(ctx, "task completed")
	return participant, nil
}

// DailyCheckin credits one check-in reward, at most once per UTC day.
func (p *AirdropProcessor) DailyCheckin(ctx context.Context, airdropID uuid.UUID, wallet string) (store.Participant, error) {
	start := time.Now()
	result := "failure"
	defer func() {
		metrics.RecordOperationDuration("daily_checkin", result, time.Since(start).Seconds())
	}()

	wallet = strings.ToLower(wallet)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "airdrop_id", Value: airdropID.String()},
		observability.Field{Key: "wallet", Value: wallet},
	)

	airdrop, err := p.store.GetAirdropByID(ctx, airdropID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrAirdropNotFound
		}
		p.logger.Error(ctx, "failed to get airdrop", err)
		return store.Participant{}, err
	}

	participant, err := p.store.GetParticipant(ctx, airdropID, wallet)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return store.Participant{}, err
	}

	now := time.Now().UTC()
	for _, checkin := range participant.CheckinDates {
		if sameUTCDay(checkin, now) {
			return store.Participant{}, ErrAlreadyCheckedInToday
		}
	}

	participant, err = p.store.AddCheckin(ctx, airdropID, wallet, now, airdrop.CheckinRewardAmount)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.Participant{}, ErrAlreadyCheckedInToday
		}
		p.logger.Error(ctx, "failed to add checkin", err)
		return store.Participant{}, err
	}

	if incErr := p.store.IncrementAirdropCheckinsCompleted(ctx, airdropID); incErr != nil {
		p.logger.Error(ctx, "failed to increment airdrop checkin counter", incErr)
	}

	result = "success"
	p.logger.Info(ctx, "daily checkin recorded")
	return participant, nil
}

// ClaimResult is the outcome of a successful claim
type ClaimResult struct {
	Participant   store.Participant `json:"participant"`
	ClaimedAmount store.BigAmount   `json:"claimed_amount"`
}

// ClaimEarnings settles a participant's full accrued balance. A participant
// claims once; the pool's total_distributed grows by exactly the claimed
// amount, and a CLAIM audit record is emitted.
func (p *AirdropProcessor) ClaimEarnings(ctx context.Context, airdropID uuid.UUID, wallet string, merkleProof []string) (ClaimResult, error) {
	start := time.Now()
	result := "failure"
	defer func() {
		metrics.RecordOperationDuration("claim", result, time.Since(start).Seconds())
	}()

	wallet = strings.ToLower(wallet)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "airdrop_id", Value: airdropID.String()},
		observability.Field{Key: "wallet", Value: wallet},
	)

	airdrop, err := p.store.GetAirdropByID(ctx, airdropID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimResult{}, ErrAirdropNotFound
		}
		p.logger.Error(ctx, "failed to get airdrop", err)
		return ClaimResult{}, err
	}

	participant, err := p.store.GetParticipant(ctx, airdropID, wallet)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimResult{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return ClaimResult{}, err
	}

	if participant.HasClaimed {
		return ClaimResult{}, ErrAlreadyClaimed
	}
	if participant.TotalEarnings.Sign() == 0 {
		return ClaimResult{}, ErrNothingToClaim
	}
	remaining := new(big.Int).Sub(&airdrop.TotalAmount.Int, &airdrop.TotalDistributed.Int)
	if participant.TotalEarnings.Cmp(remaining) > 0 {
		return ClaimResult{}, ErrInsufficientBalance
	}

	participant, err = p.store.ClaimEarnings(ctx, airdropID, wallet, time.Now().UTC(), store.StringArray(merkleProof))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ClaimResult{}, ErrAlreadyClaimed
		}
		if errors.Is(err, store.ErrInsufficientBalance) {
			return ClaimResult{}, ErrInsufficientBalance
		}
		p.logger.Error(ctx, "failed to claim earnings", err)
		return ClaimResult{}, err
	}

	tokenName := airdrop.Name
	if _, auditErr := p.audit.RecordTransaction(ctx, store.CreateTransactionParams{
		Wallet:    wallet,
		Type:      store.TransactionTypeClaim,
		Amount:    participant.TotalEarnings,
		TokenName: &tokenName,
		Status:    store.TransactionStatusSuccess,
	}); auditErr != nil {
		p.logger.Error(ctx, "failed to record claim transaction", auditErr)
	}

	result = "success"
	metrics.ClaimsTotal.Inc()
	p.logger.Info(ctx, "earnings claimed")
	return ClaimResult{Participant: participant, ClaimedAmount: participant.TotalEarnings}, nil
}

// ClaimableBreakdown splits a claimable balance by its source
type ClaimableBreakdown struct {
	Tasks    store.BigAmount `json:"tasks"`
	Checkins store.BigAmount `json:"checkins"`
}

// ClaimableAmount describes what a wallet could claim right now
type ClaimableAmount struct {
	ClaimableAmount store.BigAmount    `json:"claimable_amount"`
	Breakdown       ClaimableBreakdown `json:"breakdown"`
	HasClaimed      bool               `json:"has_claimed"`
}

// GetClaimableAmount reports a wallet's claimable balance. A wallet that
// never joined gets a zeroed breakdown, not an error; after a claim the
// stored earnings are still reported, with HasClaimed carrying the state.
func (p *AirdropProcessor) GetClaimableAmount(ctx context.Context, airdropID uuid.UUID, wallet string) (ClaimableAmount, error) {
	wallet = strings.ToLower(wallet)
	if _, err := p.store.GetAirdropByID(ctx, airdropID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimableAmount{}, ErrAirdropNotFound
		}
		p.logger.Error(ctx, "failed to get airdrop", err)
		return ClaimableAmount{}, err
	}

	participant, err := p.store.GetParticipant(ctx, airdropID, wallet)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimableAmount{}, nil
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return ClaimableAmount{}, err
	}

	return ClaimableAmount{
		ClaimableAmount: participant.TotalEarnings,
		Breakdown: ClaimableBreakdown{
			Tasks:    participant.TasksEarnings,
			Checkins: participant.CheckinsEarnings,
		},
		HasClaimed: participant.HasClaimed,
	}, nil
}

// GetParticipant retrieves one wallet's state within a campaign
func (p *AirdropProcessor) GetParticipant(ctx context.Context, airdropID uuid.UUID, wallet string) (store.Participant, error) {
	participant, err := p.store.GetParticipant(ctx, airdropID, strings.ToLower(wallet))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Participant{}, ErrParticipantNotFound
		}
		p.logger.Error(ctx, "failed to get participant", err)
		return store.Participant{}, err
	}
	return participant, nil
}

// ListParticipants retrieves every participant of a campaign
func (p *AirdropProcessor) ListParticipants(ctx context.Context, airdropID uuid.UUID) ([]store.Participant, error) {
	if _, err := p.store.GetAirdropByID(ctx, airdropID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAirdropNotFound
		}
		p.logger.Error(ctx, "failed to get airdrop", err)
		return nil, err
	}

	participants, err := p.store.ListParticipants(ctx, airdropID)
	if err != nil {
		p.logger.Error(ctx, "failed to list participants", err)
		return nil, err
	}
	return participants, nil
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func valueOrDefault(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func isValidStatus(status string) bool {
	switch status {
	case store.AirdropStatusPending, store.AirdropStatusActive, store.AirdropStatusCompleted, store.AirdropStatusCancelled:
		return true
	}
	return false
}

func isValidTaskKind(kind string) bool {
	switch kind {
	case store.TaskKindFollow, store.TaskKindRetweet, store.TaskKindLike, store.TaskKindComment, store.TaskKindExternal, store.TaskKindCustom:
		return true
	}
	return false
}
