package domain

import "context"

type CustomerAccountRepository interface {
	Create(ctx context.Context, account CustomerAccount) (CustomerAccount, error)
	GetByAccountID(ctx context.Context, accountID int64) (CustomerAccount, error)
}
