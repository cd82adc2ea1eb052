package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/models"
	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/cbank/secure-statement-delivery/src/internal/usecase/services"
)

func TestTransactionServiceCreateSuccess(t *testing.T) {
	svc := services.NewTransactionService(
		transactionRepoStub{
			createFn: func(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
				if transaction.DrOrCr != "CR" {
					t.Fatalf("expected normalized direction CR, got %q", transaction.DrOrCr)
				}
				transaction.TransactionID = 11
				return transaction, nil
			},
		},
		accountRepoStub{},
		auditRecorderStub{},
	)

	resp, err := svc.CreateTransaction(context.Background(), models.CreateTransactionRequest{
		AccountID:   1000000003,
		PostDate:    "2026-08-01",
		Amount:      "500.00",
		Description: "Salary",
		DrOrCr:      "cr",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil || resp.Data.TransactionID != 11 {
		t.Fatal("expected successful response with created transaction")
	}
}

func TestTransactionServiceCreateValidationFailures(t *testing.T) {
	svc := services.NewTransactionService(transactionRepoStub{}, accountRepoStub{}, auditRecorderStub{})

	cases := []models.CreateTransactionRequest{
		{PostDate: "2026-08-01", Amount: "10.00", DrOrCr: "CR"},
		{AccountID: 1, PostDate: "01/08/2026", Amount: "10.00", DrOrCr: "CR"},
		{AccountID: 1, PostDate: "2026-08-01", Amount: "-10.00", DrOrCr: "CR"},
		{AccountID: 1, PostDate: "2026-08-01", Amount: "10.00", DrOrCr: "XX"},
	}

	for _, req := range cases {
		if _, err := svc.CreateTransaction(context.Background(), req); err == nil {
			t.Fatalf("expected validation error for %+v", req)
		}
	}
}

func TestTransactionServiceCreateUnknownAccount(t *testing.T) {
	svc := services.NewTransactionService(
		transactionRepoStub{},
		accountRepoStub{
			getByAccountIDFn: func(_ context.Context, _ int64) (domain.CustomerAccount, error) {
				return domain.CustomerAccount{}, domain.ErrRecordNotFound
			},
		},
		auditRecorderStub{},
	)

	_, err := svc.CreateTransaction(context.Background(), models.CreateTransactionRequest{
		AccountID: 99,
		PostDate:  "2026-08-01",
		Amount:    "10.00",
		DrOrCr:    "DR",
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestTransactionServiceGetByIDNotFound(t *testing.T) {
	svc := services.NewTransactionService(
		transactionRepoStub{
			getByIDFn: func(_ context.Context, _ int64) (domain.Transaction, error) {
				return domain.Transaction{}, domain.ErrRecordNotFound
			},
		},
		accountRepoStub{},
		auditRecorderStub{},
	)

	resp, err := svc.GetTransactionByID(context.Background(), 123)
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected error response")
	}
}

func TestTransactionServiceListRecordsAudit(t *testing.T) {
	var actions []string
	svc := services.NewTransactionService(
		transactionRepoStub{
			listByAccountIDFn: func(_ context.Context, _ int64) ([]domain.Transaction, error) {
				return []domain.Transaction{{TransactionID: 1, Amount: mustDecimal(t, "10.00"), DrOrCr: "CR"}}, nil
			},
		},
		accountRepoStub{},
		auditRecorderStub{actions: &actions},
	)

	resp, err := svc.GetTransactionsByAccountID(context.Background(), 1000000003)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data == nil || len(*resp.Data) != 1 {
		t.Fatal("expected one transaction in response")
	}
	if len(actions) != 1 || actions[0] != "Transactions fetched by accountId: accountId=1000000003" {
		t.Fatalf("expected fetch audit entry, got %v", actions)
	}
}
