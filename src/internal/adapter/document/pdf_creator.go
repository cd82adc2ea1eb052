package document

import (
	"bytes"
	"fmt"

	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/cbank/secure-statement-delivery/src/internal/logger"
	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const encryptionKeyLength = 256

// PDFCreator renders a statement payload into a PDF and applies password
// protection: the owner secret is operator configuration, the user secret is
// the account's natural identifier. Printing stays allowed, modification does
// not.
type PDFCreator struct {
	masterSecret string
}

func NewPDFCreator(masterSecret string) *PDFCreator {
	return &PDFCreator{masterSecret: masterSecret}
}

func (c *PDFCreator) CreateProtectedPDF(payload domain.StatementPayload, userSecret string) ([]byte, error) {
	rendered, err := renderStatement(payload)
	if err != nil {
		logger.Error("pdf rendering failed", err, logger.Fields{
			"accountId": payload.Account.AccountID,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentCreation, err)
	}

	conf := model.NewAESConfiguration(userSecret, c.masterSecret, encryptionKeyLength)
	conf.Permissions = model.PermissionsPrint

	var protected bytes.Buffer
	if err := api.Encrypt(bytes.NewReader(rendered), &protected, conf); err != nil {
		logger.Error("pdf encryption failed", err, logger.Fields{
			"accountId": payload.Account.AccountID,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentCreation, err)
	}

	logger.Info("protected statement pdf created", logger.Fields{
		"accountId":    payload.Account.AccountID,
		"transactions": len(payload.Transactions),
	})

	return protected.Bytes(), nil
}

func renderStatement(payload domain.StatementPayload) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Account Statement", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s %s", payload.Account.FirstName, payload.Account.LastName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Account: %d", payload.Account.AccountID), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	if payload.Empty() {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 8, "No transactions for this period.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(30, 8, "Post Date", "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 8, "Description", "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 8, "DR/CR", "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, "Amount", "1", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, transaction := range payload.Transactions {
			pdf.CellFormat(30, 7, transaction.PostDate.Format("2006-01-02"), "1", 0, "L", false, 0, "")
			pdf.CellFormat(90, 7, transaction.Description, "1", 0, "L", false, 0, "")
			pdf.CellFormat(15, 7, transaction.DrOrCr, "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 7, transaction.Amount.String(), "1", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Closing Balance: "+payload.TotalBalance.String(), "", 1, "R", false, 0, "")

	var rendered bytes.Buffer
	if err := pdf.Output(&rendered); err != nil {
		return nil, err
	}

	return rendered.Bytes(), nil
}
