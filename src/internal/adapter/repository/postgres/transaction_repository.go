package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbank/secure-statement-delivery/src/internal/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	const query = `
INSERT INTO transactions (
	post_date,
	account_id,
	amount,
	description,
	dr_or_cr
) VALUES ($1, $2, $3, $4, $5)
RETURNING transaction_id, created_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		transaction.PostDate,
		transaction.AccountID,
		transaction.Amount,
		transaction.Description,
		transaction.DrOrCr,
	).Scan(&transaction.TransactionID, &transaction.CreatedAt); err != nil {
		if constraintErr := asConstraintViolation(err); constraintErr != nil {
			return domain.Transaction{}, constraintErr
		}
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	return transaction, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID int64) (domain.Transaction, error) {
	const query = `
SELECT transaction_id, created_at, post_date, account_id, amount, description, dr_or_cr
FROM transactions
WHERE transaction_id = $1`

	var transaction domain.Transaction
	if err := r.db.QueryRowContext(ctx, query, transactionID).Scan(
		&transaction.TransactionID,
		&transaction.CreatedAt,
		&transaction.PostDate,
		&transaction.AccountID,
		&transaction.Amount,
		&transaction.Description,
		&transaction.DrOrCr,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, domain.ErrRecordNotFound
		}
		return domain.Transaction{}, fmt.Errorf("get transaction %d: %w", transactionID, err)
	}

	return transaction, nil
}

func (r *TransactionRepository) ListByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	const query = `
SELECT transaction_id, created_at, post_date, account_id, amount, description, dr_or_cr
FROM transactions
WHERE account_id = $1
ORDER BY post_date ASC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list transactions for account %d: %w", accountID, err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(
			&transaction.TransactionID,
			&transaction.CreatedAt,
			&transaction.PostDate,
			&transaction.AccountID,
			&transaction.Amount,
			&transaction.Description,
			&transaction.DrOrCr,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return transactions, nil
}
