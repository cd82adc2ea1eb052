package domain

import "context"

type StatementRepository interface {
	Create(ctx context.Context, statement Statement) (Statement, error)
	GetByRetrievalToken(ctx context.Context, token string) (Statement, error)
}
