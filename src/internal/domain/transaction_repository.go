package domain

import "context"

type TransactionRepository interface {
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	GetByID(ctx context.Context, transactionID int64) (Transaction, error)
	// ListByAccountID returns the account's transactions ordered by post date
	// ascending, the order the rendering engine expects.
	ListByAccountID(ctx context.Context, accountID int64) ([]Transaction, error)
}
