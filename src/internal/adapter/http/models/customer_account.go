package models

import (
	"errors"
	"strings"
)

type CreateCustomerAccountRequest struct {
	AccountID       int64  `json:"accountId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	IDNumber        string `json:"idNumber"`
	EmailAddress    string `json:"emailAddress"`
	CellphoneNumber string `json:"cellphoneNumber"`
}

func (r CreateCustomerAccountRequest) Validate() error {
	var errs []string

	if r.AccountID <= 0 {
		errs = append(errs, "accountId is required")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "lastName is required")
	}
	if strings.TrimSpace(r.IDNumber) == "" {
		errs = append(errs, "idNumber is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type CustomerAccountResponse struct {
	AccountID       int64  `json:"accountId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	IDNumber        string `json:"idNumber"`
	EmailAddress    string `json:"emailAddress"`
	CellphoneNumber string `json:"cellphoneNumber"`
}
