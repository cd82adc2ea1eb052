package models

import "errors"

type GenerateStatementRequest struct {
	AccountID int64 `json:"accountId"`
}

func (r GenerateStatementRequest) Validate() error {
	if r.AccountID <= 0 {
		return errors.New("accountId is required")
	}
	return nil
}

type GenerateStatementResponse struct {
	RetrievalLink string `json:"retrievalLink"`
}
