package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement binds a generated document in object storage to a single opaque
// retrieval token. Records are created once at the end of a successful
// generation run and never updated.
type Statement struct {
	StatementID    int64
	CreatedAt      time.Time
	AccountID      int64
	Filename       string
	RetrievalToken string
	Link           string
	ExpiresAt      time.Time
}

// StatementPayload is the renderable snapshot handed to document packaging:
// the account's identifying fields, the ordered transaction list and the
// folded closing balance.
type StatementPayload struct {
	Account      CustomerAccount
	Transactions []Transaction
	TotalBalance decimal.Decimal
}

// Empty reports the "no transactions" sentinel case, which renders a valid
// statement rather than failing generation.
func (p StatementPayload) Empty() bool {
	return len(p.Transactions) == 0
}
