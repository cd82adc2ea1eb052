package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/models"
	"github.com/cbank/secure-statement-delivery/src/internal/commons"
	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/cbank/secure-statement-delivery/src/internal/logger"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	transactionRepo domain.TransactionRepository
	accountRepo     domain.CustomerAccountRepository
	audit           domain.AuditRecorder
}

func NewTransactionService(
	transactionRepo domain.TransactionRepository,
	accountRepo domain.CustomerAccountRepository,
	audit domain.AuditRecorder,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		audit:           audit,
	}
}

func (s *TransactionService) GetTransactionsByAccountID(ctx context.Context, accountID int64) (commons.Response[[]models.TransactionResponse], error) {
	logger.Info("transaction service fetch by account request", logger.Fields{
		"accountId": accountID,
	})

	if accountID <= 0 {
		err := fmt.Errorf("accountId is required")
		return commons.ErrorResponse[[]models.TransactionResponse]("validation failed", err.Error()), err
	}

	transactions, err := s.transactionRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("transaction service fetch by account failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to fetch transactions", "Unable to fetch transactions right now"), err
	}

	response := make([]models.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		response = append(response, toTransactionResponse(transaction))
	}

	s.audit.Record(ctx, "Transactions fetched by accountId", fmt.Sprintf("accountId=%d", accountID))

	return commons.SuccessResponse("transactions fetched successfully", response), nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID int64) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service fetch by id request", logger.Fields{
		"transactionId": transactionID,
	})

	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		logger.Error("transaction service fetch by id failed", err, logger.Fields{
			"transactionId": transactionID,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Transaction not found"), err
		}
		return commons.ErrorResponse[models.TransactionResponse]("failed to fetch transaction", "Unable to fetch transaction right now"), err
	}

	s.audit.Record(ctx, "Transaction fetched by transactionId", fmt.Sprintf("transactionId=%d", transactionID))

	return commons.SuccessResponse("transaction fetched successfully", toTransactionResponse(transaction)), nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service create validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	if _, err := s.accountRepo.GetByAccountID(ctx, req.AccountID); err != nil {
		logger.Error("transaction service account lookup failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Account not found"), domain.ErrAccountNotFound
		}
		return commons.ErrorResponse[models.TransactionResponse]("failed to create transaction", "Unable to create transaction right now"), err
	}

	postDate, _ := time.Parse("2006-01-02", strings.TrimSpace(req.PostDate))
	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))

	transaction := domain.Transaction{
		PostDate:    postDate,
		AccountID:   req.AccountID,
		Amount:      amount,
		Description: strings.TrimSpace(req.Description),
		DrOrCr:      strings.ToUpper(strings.TrimSpace(req.DrOrCr)),
	}

	created, err := s.transactionRepo.Create(ctx, transaction)
	if err != nil {
		logger.Error("transaction service create repository failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		if errors.Is(err, domain.ErrConstraintViolation) {
			return commons.ErrorResponse[models.TransactionResponse]("Database constraint violation", err.Error()), err
		}
		return commons.ErrorResponse[models.TransactionResponse]("failed to create transaction", "Unable to create transaction right now"), err
	}

	s.audit.Record(ctx, "Transaction created", fmt.Sprintf("transactionId=%d accountId=%d", created.TransactionID, created.AccountID))

	return commons.SuccessResponse("transaction created successfully", toTransactionResponse(created)), nil
}

func toTransactionResponse(transaction domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		TransactionID: transaction.TransactionID,
		CreatedAt:     transaction.CreatedAt.Format(time.RFC3339),
		PostDate:      transaction.PostDate.Format("2006-01-02"),
		AccountID:     transaction.AccountID,
		Amount:        transaction.Amount.String(),
		Description:   transaction.Description,
		DrOrCr:        transaction.DrOrCr,
	}
}
