package document

import (
	"bytes"
	"testing"
	"time"

	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/shopspring/decimal"
)

func testPayload(t *testing.T) domain.StatementPayload {
	t.Helper()

	credit, err := decimal.NewFromString("500.00")
	if err != nil {
		t.Fatalf("parse decimal: %v", err)
	}
	debit, err := decimal.NewFromString("200.00")
	if err != nil {
		t.Fatalf("parse decimal: %v", err)
	}

	return domain.StatementPayload{
		Account: domain.CustomerAccount{
			AccountID: 1000000003,
			FirstName: "Thandi",
			LastName:  "Mokoena",
			IDNumber:  "9001015800087",
		},
		Transactions: []domain.Transaction{
			{PostDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Description: "Salary", Amount: credit, DrOrCr: "CR"},
			{PostDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), Description: "Rent", Amount: debit, DrOrCr: "DR"},
		},
		TotalBalance: credit.Sub(debit),
	}
}

func TestRenderStatementProducesPDF(t *testing.T) {
	rendered, err := renderStatement(testPayload(t))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !bytes.HasPrefix(rendered, []byte("%PDF")) {
		t.Fatal("expected rendered output to be a PDF")
	}
}

func TestRenderStatementEmptyPayload(t *testing.T) {
	payload := domain.StatementPayload{
		Account:      domain.CustomerAccount{AccountID: 7, FirstName: "Sipho", LastName: "Dlamini"},
		TotalBalance: decimal.Zero,
	}

	rendered, err := renderStatement(payload)
	if err != nil {
		t.Fatalf("expected empty payload to render, got %v", err)
	}
	if len(rendered) == 0 {
		t.Fatal("expected non-empty document for the no-transactions statement")
	}
}

func TestCreateProtectedPDFEncrypts(t *testing.T) {
	creator := NewPDFCreator("operator-master-secret")
	payload := testPayload(t)

	plain, err := renderStatement(payload)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	protected, err := creator.CreateProtectedPDF(payload, payload.Account.IDNumber)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(protected) == 0 {
		t.Fatal("expected protected document bytes")
	}
	if bytes.Equal(protected, plain) {
		t.Fatal("expected protection to change the document bytes")
	}
	if bytes.Contains(protected, []byte("Salary")) {
		t.Fatal("expected content streams to be encrypted")
	}
}
