package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/models"
	"github.com/cbank/secure-statement-delivery/src/internal/commons"
	"github.com/cbank/secure-statement-delivery/src/internal/config"
	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/cbank/secure-statement-delivery/src/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// statementValidity is the fixed lifetime of a retrieval token.
const statementValidity = config.StatementExpiryMins * time.Minute

type StatementService struct {
	statementRepo    domain.StatementRepository
	transactionRepo  domain.TransactionRepository
	accountRepo      domain.CustomerAccountRepository
	fileCreator      domain.FileCreator
	fileStorage      domain.FileStorage
	audit            domain.AuditRecorder
	retrievalURLBase string
	httpClient       *http.Client
}

func NewStatementService(
	statementRepo domain.StatementRepository,
	transactionRepo domain.TransactionRepository,
	accountRepo domain.CustomerAccountRepository,
	fileCreator domain.FileCreator,
	fileStorage domain.FileStorage,
	audit domain.AuditRecorder,
	retrievalURLBase string,
) *StatementService {
	return &StatementService{
		statementRepo:    statementRepo,
		transactionRepo:  transactionRepo,
		accountRepo:      accountRepo,
		fileCreator:      fileCreator,
		fileStorage:      fileStorage,
		audit:            audit,
		retrievalURLBase: strings.TrimSpace(retrievalURLBase),
		httpClient:       &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateStatement runs the full pipeline for one account: fetch ordered
// transactions, fold the balance, render and protect the PDF, upload it,
// mint a presigned link and persist the statement record. The record is only
// persisted after the upload has confirmed success, so a statement never
// points at a missing object.
func (s *StatementService) GenerateStatement(ctx context.Context, req models.GenerateStatementRequest) (commons.Response[models.GenerateStatementResponse], error) {
	logger.Info("statement service generate statement request", logger.Fields{
		"accountId": req.AccountID,
	})

	if err := req.Validate(); err != nil {
		logger.Error("statement service generate statement validation failed", err, nil)
		return commons.ErrorResponse[models.GenerateStatementResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountID(ctx, req.AccountID)
	if err != nil {
		logger.Error("statement service account lookup failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.GenerateStatementResponse]("Account not found"), domain.ErrAccountNotFound
		}
		return commons.ErrorResponse[models.GenerateStatementResponse]("failed to generate statement", "Unable to generate statement right now"), err
	}

	transactions, err := s.transactionRepo.ListByAccountID(ctx, req.AccountID)
	if err != nil {
		logger.Error("statement service transaction fetch failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[models.GenerateStatementResponse]("failed to generate statement", "Unable to generate statement right now"), err
	}

	payload := BuildStatementPayload(account, transactions)
	s.audit.Record(ctx, "Statement transactions formatted", fmt.Sprintf("accountId=%d transactions=%d", req.AccountID, len(transactions)))

	protectedPDF, err := s.fileCreator.CreateProtectedPDF(payload, account.IDNumber)
	if err != nil {
		logger.Error("statement service pdf creation failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[models.GenerateStatementResponse]("failed to generate statement", "Unable to create statement document"), err
	}
	s.audit.Record(ctx, "PDF Statement generated", fmt.Sprintf("accountId=%d", req.AccountID))

	filename, err := s.fileStorage.Upload(ctx, protectedPDF)
	if err != nil {
		logger.Error("statement service upload failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[models.GenerateStatementResponse]("failed to generate statement", "Unable to store statement document"), err
	}
	s.audit.Record(ctx, "PDF uploaded", "filename="+filename)

	presignedLink, err := s.fileStorage.PresignedLink(ctx, filename)
	if err != nil {
		logger.Error("statement service presign failed", err, logger.Fields{
			"accountId": req.AccountID,
			"filename":  filename,
		})
		return commons.ErrorResponse[models.GenerateStatementResponse]("failed to generate statement", "Unable to store statement document"), err
	}
	s.audit.Record(ctx, "Presigned Link generated", "filename="+filename)

	now := time.Now().UTC()
	statement := domain.Statement{
		CreatedAt:      now,
		AccountID:      account.AccountID,
		Filename:       filename,
		RetrievalToken: uuid.NewString(),
		Link:           presignedLink,
		ExpiresAt:      now.Add(statementValidity),
	}

	saved, err := s.statementRepo.Create(ctx, statement)
	if err != nil {
		logger.Error("statement service persist failed", err, logger.Fields{
			"accountId": req.AccountID,
			"filename":  filename,
		})
		if errors.Is(err, domain.ErrConstraintViolation) {
			return commons.ErrorResponse[models.GenerateStatementResponse]("Database constraint violation", err.Error()), err
		}
		return commons.ErrorResponse[models.GenerateStatementResponse]("failed to generate statement", "Unable to generate statement right now"), err
	}
	s.audit.Record(ctx, "Statement created", fmt.Sprintf("statementId=%d accountId=%d", saved.StatementID, saved.AccountID))

	retrievalLink := s.retrievalURLBase + saved.RetrievalToken
	s.audit.Record(ctx, "New Statement generated", fmt.Sprintf("accountId=%d", req.AccountID))

	logger.Info("statement service generate statement success", logger.Fields{
		"accountId":   saved.AccountID,
		"statementId": saved.StatementID,
		"filename":    saved.Filename,
	})

	return commons.SuccessResponse("statement generated successfully", models.GenerateStatementResponse{
		RetrievalLink: retrievalLink,
	}), nil
}

// DownloadStatementUsingToken exchanges a retrieval token for the stored
// document bytes. The expiry check happens before the outbound fetch so an
// already-expired token never reaches the storage backend; every downstream
// failure folds into ErrRetrievalFailed so the unauthenticated endpoint
// reveals nothing about the backend.
func (s *StatementService) DownloadStatementUsingToken(ctx context.Context, retrievalToken string) ([]byte, error) {
	statement, err := s.statementRepo.GetByRetrievalToken(ctx, retrievalToken)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrInvalidToken
		}
		logger.Error("statement service token lookup failed", err, nil)
		return nil, fmt.Errorf("%w: token lookup failed", domain.ErrRetrievalFailed)
	}

	if time.Now().UTC().After(statement.ExpiresAt) {
		logger.Info("statement service token expired", logger.Fields{
			"statementId": statement.StatementID,
			"expiresAt":   statement.ExpiresAt,
		})
		return nil, fmt.Errorf("%w: statement expired", domain.ErrRetrievalFailed)
	}

	downloadURL, err := url.QueryUnescape(statement.Link)
	if err != nil {
		logger.Error("statement service link decode failed", err, logger.Fields{
			"statementId": statement.StatementID,
		})
		return nil, fmt.Errorf("%w: stored link is not decodable", domain.ErrRetrievalFailed)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: stored link is not usable", domain.ErrRetrievalFailed)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("statement service presigned fetch failed", err, logger.Fields{
			"statementId": statement.StatementID,
		})
		return nil, fmt.Errorf("%w: presigned fetch failed", domain.ErrRetrievalFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("statement service presigned fetch rejected", nil, logger.Fields{
			"statementId": statement.StatementID,
			"status":      resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: presigned fetch returned status %d", domain.ErrRetrievalFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading statement bytes failed", domain.ErrRetrievalFailed)
	}

	s.audit.Record(ctx, "Statement downloading using public link", fmt.Sprintf("statementId=%d", statement.StatementID))

	return body, nil
}

// BuildStatementPayload folds an ordered transaction list into the closing
// balance: credits add, debits subtract, direction compared case-insensitively.
// An empty list is valid and yields a zero balance.
func BuildStatementPayload(account domain.CustomerAccount, transactions []domain.Transaction) domain.StatementPayload {
	balance := decimal.Zero
	for _, transaction := range transactions {
		if strings.EqualFold(transaction.DrOrCr, domain.DirectionCredit) {
			balance = balance.Add(transaction.Amount)
		} else if strings.EqualFold(transaction.DrOrCr, domain.DirectionDebit) {
			balance = balance.Sub(transaction.Amount)
		}
	}

	return domain.StatementPayload{
		Account:      account,
		Transactions: transactions,
		TotalBalance: balance,
	}
}
