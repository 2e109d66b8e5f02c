package leaderboard

import (
	"context"
	"errors"
	"testing"

	"dropz-server/internal/observability"
	"dropz-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func participantWithEarnings(t *testing.T, wallet, earnings string) store.Participant {
	t.Helper()
	amount, err := store.NewBigAmount(earnings)
	if err != nil {
		t.Fatalf("failed to parse amount %q: %v", earnings, err)
	}
	return store.Participant{
		ID:            uuid.New(),
		Wallet:        wallet,
		TotalEarnings: amount,
	}
}

func newTestService(t *testing.T) (Service, *MockParticipantStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := NewMockParticipantStore(ctrl)
	// nil Redis client exercises the database fallback path
	return NewService(nil, mockStore, observability.NewLogger()), mockStore
}

func TestGetTop_OrdersByEarningsDescending(t *testing.T) {
	service, mockStore := newTestService(t)
	airdropID := uuid.New()

	mockStore.EXPECT().ListParticipants(gomock.Any(), airdropID).Return([]store.Participant{
		participantWithEarnings(t, "0xaaa", "100000000000000000"),
		participantWithEarnings(t, "0xbbb", "700000000000000000"),
		participantWithEarnings(t, "0xccc", "400000000000000000"),
	}, nil)

	entries, err := service.GetTop(context.Background(), airdropID, 10)
	if err != nil {
		t.Fatalf("GetTop() error = %v", err)
	}

	wantOrder := []string{"0xbbb", "0xccc", "0xaaa"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(wantOrder))
	}
	for i, want := range wantOrder {
		if entries[i].Wallet != want {
			t.Errorf("entries[%d].Wallet = %s, want %s", i, entries[i].Wallet, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("entries[%d].Rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
}

func TestGetTop_HonorsLimit(t *testing.T) {
	service, mockStore := newTestService(t)
	airdropID := uuid.New()

	mockStore.EXPECT().ListParticipants(gomock.Any(), airdropID).Return([]store.Participant{
		participantWithEarnings(t, "0xaaa", "300000000000000000"),
		participantWithEarnings(t, "0xbbb", "200000000000000000"),
		participantWithEarnings(t, "0xccc", "100000000000000000"),
	}, nil)

	entries, err := service.GetTop(context.Background(), airdropID, 2)
	if err != nil {
		t.Fatalf("GetTop() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("len(entries) = %d, want 2", len(entries))
	}
}

func TestGetRank_FindsWallet(t *testing.T) {
	service, mockStore := newTestService(t)
	airdropID := uuid.New()

	mockStore.EXPECT().ListParticipants(gomock.Any(), airdropID).Return([]store.Participant{
		participantWithEarnings(t, "0xaaa", "100000000000000000"),
		participantWithEarnings(t, "0xbbb", "700000000000000000"),
	}, nil)

	entry, err := service.GetRank(context.Background(), airdropID, "0xaaa")
	if err != nil {
		t.Fatalf("GetRank() error = %v", err)
	}
	if entry.Rank != 2 {
		t.Errorf("Rank = %d, want 2", entry.Rank)
	}
}

func TestGetRank_UnknownWallet(t *testing.T) {
	service, mockStore := newTestService(t)
	airdropID := uuid.New()

	mockStore.EXPECT().ListParticipants(gomock.Any(), airdropID).Return([]store.Participant{
		participantWithEarnings(t, "0xaaa", "100000000000000000"),
	}, nil)

	_, err := service.GetRank(context.Background(), airdropID, "0xdead")
	if !errors.Is(err, ErrWalletNotRanked) {
		t.Errorf("error = %v, want %v", err, ErrWalletNotRanked)
	}
}
