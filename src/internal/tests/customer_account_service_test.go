package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/models"
	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/cbank/secure-statement-delivery/src/internal/usecase/services"
)

func TestCustomerAccountServiceCreateSuccess(t *testing.T) {
	svc := services.NewCustomerAccountService(accountRepoStub{}, auditRecorderStub{})

	resp, err := svc.CreateCustomerAccount(context.Background(), models.CreateCustomerAccountRequest{
		AccountID: 1000000003,
		FirstName: "Thandi",
		LastName:  "Mokoena",
		IDNumber:  "9001015800087",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil || resp.Data.AccountID != 1000000003 {
		t.Fatal("expected successful response with created account")
	}
}

func TestCustomerAccountServiceCreateValidationError(t *testing.T) {
	svc := services.NewCustomerAccountService(accountRepoStub{}, auditRecorderStub{})

	if _, err := svc.CreateCustomerAccount(context.Background(), models.CreateCustomerAccountRequest{AccountID: 1}); err == nil {
		t.Fatal("expected validation error for missing identity fields")
	}
}

func TestCustomerAccountServiceCreateConstraintViolation(t *testing.T) {
	svc := services.NewCustomerAccountService(
		accountRepoStub{
			createFn: func(_ context.Context, _ domain.CustomerAccount) (domain.CustomerAccount, error) {
				return domain.CustomerAccount{}, fmt.Errorf("%w: duplicate key value violates unique constraint", domain.ErrConstraintViolation)
			},
		},
		auditRecorderStub{},
	)

	resp, err := svc.CreateCustomerAccount(context.Background(), models.CreateCustomerAccountRequest{
		AccountID: 1,
		FirstName: "Thandi",
		LastName:  "Mokoena",
		IDNumber:  "9001015800087",
	})
	if !errors.Is(err, domain.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
	if resp.Message != "Database constraint violation" {
		t.Fatalf("expected constraint message surfaced, got %q", resp.Message)
	}
}

func TestCustomerAccountServiceGetNotFound(t *testing.T) {
	svc := services.NewCustomerAccountService(
		accountRepoStub{
			getByAccountIDFn: func(_ context.Context, _ int64) (domain.CustomerAccount, error) {
				return domain.CustomerAccount{}, domain.ErrRecordNotFound
			},
		},
		auditRecorderStub{},
	)

	_, err := svc.GetCustomerAccount(context.Background(), 404)
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
