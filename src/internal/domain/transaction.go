package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DirectionCredit = "CR"
	DirectionDebit  = "DR"
)

// Transaction is immutable once created and always references one existing
// customer account. Amount carries a non-negative magnitude; DrOrCr holds the
// direction flag.
type Transaction struct {
	TransactionID int64
	CreatedAt     time.Time
	PostDate      time.Time
	AccountID     int64
	Amount        decimal.Decimal
	Description   string
	DrOrCr        string
}
