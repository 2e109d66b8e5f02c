package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"dropz-server/internal/observability"
	"dropz-server/internal/store"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("invalid transaction amount")
)

// Wallet history is capped to the most recent entries.
const walletHistoryLimit = 10

// TransactionStore defines the database operations required by TransactionProcessor
type TransactionStore interface {
	CreateTransaction(ctx context.Context, params store.CreateTransactionParams) (store.Transaction, error)
	GetTransactionsByWallet(ctx context.Context, wallet string, limit int) ([]store.Transaction, error)
}

type TransactionProcessor struct {
	store  TransactionStore
	logger *observability.Logger
}

func New(store TransactionStore, logger *observability.Logger) TransactionProcessor {
	return TransactionProcessor{
		store:  store,
		logger: logger,
	}
}

// RecordTransaction validates and persists one audit-log entry. It backs the
// AuditSink used by the airdrop ledger and the public transactions endpoint.
func (p *TransactionProcessor) RecordTransaction(ctx context.Context, params store.CreateTransactionParams) (store.Transaction, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "wallet", Value: params.Wallet},
		observability.Field{Key: "transaction_type", Value: params.Type},
	)

	if !isValidTransactionType(params.Type) {
		return store.Transaction{}, ErrInvalidTransactionType
	}
	if params.Status == "" {
		params.Status = store.TransactionStatusSuccess
	}

	transaction, err := p.store.CreateTransaction(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to record transaction", err)
		return store.Transaction{}, err
	}

	p.logger.Info(ctx, "transaction recorded")
	return transaction, nil
}

// GetWalletHistory retrieves a wallet's most recent transactions, newest first
func (p *TransactionProcessor) GetWalletHistory(ctx context.Context, wallet string) ([]store.Transaction, error) {
	transactions, err := p.store.GetTransactionsByWallet(ctx, wallet, walletHistoryLimit)
	if err != nil {
		p.logger.Error(ctx, "failed to get wallet history", err)
		return nil, err
	}
	if transactions == nil {
		transactions = []store.Transaction{}
	}
	return transactions, nil
}

func isValidTransactionType(transactionType string) bool {
	switch transactionType {
	case store.TransactionTypeSend, store.TransactionTypeClaim, store.TransactionTypeCreate, store.TransactionTypeDeposit:
		return true
	}
	return false
}
