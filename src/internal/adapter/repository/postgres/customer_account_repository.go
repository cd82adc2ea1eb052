package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/lib/pq"
)

type CustomerAccountRepository struct {
	db *sql.DB
}

func NewCustomerAccountRepository(db *sql.DB) *CustomerAccountRepository {
	return &CustomerAccountRepository{db: db}
}

func (r *CustomerAccountRepository) Create(ctx context.Context, account domain.CustomerAccount) (domain.CustomerAccount, error) {
	const query = `
INSERT INTO customer_accounts (
	account_id,
	first_name,
	last_name,
	id_number,
	email_address,
	cellphone_number
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING account_id`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.AccountID,
		account.FirstName,
		account.LastName,
		account.IDNumber,
		account.EmailAddress,
		account.CellphoneNumber,
	).Scan(&account.AccountID); err != nil {
		if constraintErr := asConstraintViolation(err); constraintErr != nil {
			return domain.CustomerAccount{}, constraintErr
		}
		return domain.CustomerAccount{}, fmt.Errorf("create customer account: %w", err)
	}

	return account, nil
}

func (r *CustomerAccountRepository) GetByAccountID(ctx context.Context, accountID int64) (domain.CustomerAccount, error) {
	const query = `
SELECT account_id, first_name, last_name, id_number, email_address, cellphone_number
FROM customer_accounts
WHERE account_id = $1`

	var account domain.CustomerAccount
	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(
		&account.AccountID,
		&account.FirstName,
		&account.LastName,
		&account.IDNumber,
		&account.EmailAddress,
		&account.CellphoneNumber,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CustomerAccount{}, domain.ErrRecordNotFound
		}
		return domain.CustomerAccount{}, fmt.Errorf("get customer account %d: %w", accountID, err)
	}

	return account, nil
}

// asConstraintViolation maps postgres unique and foreign-key violations onto
// the domain error so callers can surface the constraint message.
func asConstraintViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23505", "23503":
			return fmt.Errorf("%w: %s", domain.ErrConstraintViolation, pqErr.Message)
		}
	}
	return nil
}
