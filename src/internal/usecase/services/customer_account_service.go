package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/models"
	"github.com/cbank/secure-statement-delivery/src/internal/commons"
	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/cbank/secure-statement-delivery/src/internal/logger"
)

type CustomerAccountService struct {
	accountRepo domain.CustomerAccountRepository
	audit       domain.AuditRecorder
}

func NewCustomerAccountService(accountRepo domain.CustomerAccountRepository, audit domain.AuditRecorder) *CustomerAccountService {
	return &CustomerAccountService{accountRepo: accountRepo, audit: audit}
}

func (s *CustomerAccountService) CreateCustomerAccount(ctx context.Context, req models.CreateCustomerAccountRequest) (commons.Response[models.CustomerAccountResponse], error) {
	logger.Info("customer account service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("customer account service create validation failed", err, nil)
		return commons.ErrorResponse[models.CustomerAccountResponse]("validation failed", err.Error()), err
	}

	account := domain.CustomerAccount{
		AccountID:       req.AccountID,
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		IDNumber:        strings.TrimSpace(req.IDNumber),
		EmailAddress:    strings.TrimSpace(req.EmailAddress),
		CellphoneNumber: strings.TrimSpace(req.CellphoneNumber),
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("customer account service create repository failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		if errors.Is(err, domain.ErrConstraintViolation) {
			return commons.ErrorResponse[models.CustomerAccountResponse]("Database constraint violation", err.Error()), err
		}
		return commons.ErrorResponse[models.CustomerAccountResponse]("failed to create customer account", "Unable to create customer account right now"), err
	}

	s.audit.Record(ctx, "Created Customer Account", fmt.Sprintf("accountId=%d", created.AccountID))

	return commons.SuccessResponse("customer account created successfully", toCustomerAccountResponse(created)), nil
}

func (s *CustomerAccountService) GetCustomerAccount(ctx context.Context, accountID int64) (commons.Response[models.CustomerAccountResponse], error) {
	logger.Info("customer account service get request", logger.Fields{
		"accountId": accountID,
	})

	account, err := s.accountRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("customer account service get failed", err, logger.Fields{
			"accountId": accountID,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CustomerAccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.CustomerAccountResponse]("failed to fetch customer account", "Unable to fetch customer account right now"), err
	}

	return commons.SuccessResponse("customer account fetched successfully", toCustomerAccountResponse(account)), nil
}

func toCustomerAccountResponse(account domain.CustomerAccount) models.CustomerAccountResponse {
	return models.CustomerAccountResponse{
		AccountID:       account.AccountID,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		IDNumber:        account.IDNumber,
		EmailAddress:    account.EmailAddress,
		CellphoneNumber: account.CellphoneNumber,
	}
}
