package store

import (
	"context"
	"fmt"
)

// CreateTransactionParams represents parameters for recording a transaction
type CreateTransactionParams struct {
	Wallet          string
	Type            string
	Amount          BigAmount
	Recipient       *string
	TokenName       *string
	TransactionHash *string
	Status          string
}

const sqlCreateTransaction = `
INSERT INTO transactions (wallet, type, amount, recipient, token_name, transaction_hash, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, wallet, type, amount, recipient, token_name, transaction_hash, status, created_at
`

// CreateTransaction records one audit-log entry
func (s *Store) CreateTransaction(ctx context.Context, params CreateTransactionParams) (Transaction, error) {
	var transaction Transaction
	err := s.db.GetContext(ctx, &transaction, sqlCreateTransaction,
		params.Wallet,
		params.Type,
		params.Amount,
		params.Recipient,
		params.TokenName,
		params.TransactionHash,
		params.Status)
	if err != nil {
		s.logger.Error(ctx, "failed to create transaction", err)
		return Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, nil
}

const sqlGetTransactionsByWallet = `
SELECT id, wallet, type, amount, recipient, token_name, transaction_hash, status, created_at
FROM transactions
WHERE wallet = $1
ORDER BY created_at DESC
LIMIT $2
`

// GetTransactionsByWallet retrieves a wallet's most recent transactions
func (s *Store) GetTransactionsByWallet(ctx context.Context, wallet string, limit int) ([]Transaction, error) {
	var transactions []Transaction
	err := s.db.SelectContext(ctx, &transactions, sqlGetTransactionsByWallet, wallet, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get transactions by wallet", err)
		return nil, fmt.Errorf("failed to get transactions by wallet: %w", err)
	}
	return transactions, nil
}
