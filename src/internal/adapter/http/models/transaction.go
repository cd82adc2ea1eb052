package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	AccountID   int64  `json:"accountId"`
	PostDate    string `json:"postDate"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	DrOrCr      string `json:"drOrCr"`
}

func (r CreateTransactionRequest) Validate() error {
	var errs []string

	if r.AccountID <= 0 {
		errs = append(errs, "accountId is required")
	}

	if strings.TrimSpace(r.PostDate) == "" {
		errs = append(errs, "postDate is required")
	} else if _, err := time.Parse("2006-01-02", strings.TrimSpace(r.PostDate)); err != nil {
		errs = append(errs, "postDate must be formatted as YYYY-MM-DD")
	}

	amount := strings.TrimSpace(r.Amount)
	if amount == "" {
		errs = append(errs, "amount is required")
	} else {
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			errs = append(errs, "amount must be numeric")
		} else if parsed.LessThan(decimal.Zero) {
			errs = append(errs, "amount cannot be negative")
		}
	}

	direction := strings.ToUpper(strings.TrimSpace(r.DrOrCr))
	if direction != "CR" && direction != "DR" {
		errs = append(errs, "drOrCr must be one of CR, DR")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransactionResponse struct {
	TransactionID int64  `json:"transactionId"`
	CreatedAt     string `json:"createdAt"`
	PostDate      string `json:"postDate"`
	AccountID     int64  `json:"accountId"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	DrOrCr        string `json:"drOrCr"`
}
