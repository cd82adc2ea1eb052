package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbank/secure-statement-delivery/src/internal/domain"
)

type StatementRepository struct {
	db *sql.DB
}

func NewStatementRepository(db *sql.DB) *StatementRepository {
	return &StatementRepository{db: db}
}

func (r *StatementRepository) Create(ctx context.Context, statement domain.Statement) (domain.Statement, error) {
	const query = `
INSERT INTO statements (
	account_id,
	filename,
	retrieval_token,
	link,
	expires_at
) VALUES ($1, $2, $3, $4, $5)
RETURNING statement_id, created_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		statement.AccountID,
		statement.Filename,
		statement.RetrievalToken,
		statement.Link,
		statement.ExpiresAt,
	).Scan(&statement.StatementID, &statement.CreatedAt); err != nil {
		if constraintErr := asConstraintViolation(err); constraintErr != nil {
			return domain.Statement{}, constraintErr
		}
		return domain.Statement{}, fmt.Errorf("create statement: %w", err)
	}

	return statement, nil
}

func (r *StatementRepository) GetByRetrievalToken(ctx context.Context, token string) (domain.Statement, error) {
	const query = `
SELECT statement_id, created_at, account_id, filename, retrieval_token, link, expires_at
FROM statements
WHERE retrieval_token = $1`

	var statement domain.Statement
	if err := r.db.QueryRowContext(ctx, query, token).Scan(
		&statement.StatementID,
		&statement.CreatedAt,
		&statement.AccountID,
		&statement.Filename,
		&statement.RetrievalToken,
		&statement.Link,
		&statement.ExpiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Statement{}, domain.ErrRecordNotFound
		}
		return domain.Statement{}, fmt.Errorf("get statement by retrieval token: %w", err)
	}

	return statement, nil
}
