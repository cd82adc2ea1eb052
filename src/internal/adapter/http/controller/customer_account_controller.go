package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/models"
	"github.com/cbank/secure-statement-delivery/src/internal/commons"
)

type CustomerAccountService interface {
	CreateCustomerAccount(ctx context.Context, req models.CreateCustomerAccountRequest) (commons.Response[models.CustomerAccountResponse], error)
	GetCustomerAccount(ctx context.Context, accountID int64) (commons.Response[models.CustomerAccountResponse], error)
}

type CustomerAccountController struct {
	service CustomerAccountService
}

func NewCustomerAccountController(service CustomerAccountService) *CustomerAccountController {
	return &CustomerAccountController{service: service}
}

func (c *CustomerAccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(handler)
		}
		return handler
	}

	mux.Handle("POST /api/v1/customer-accounts/create", wrap(c.createCustomerAccount))
	mux.Handle("GET /api/v1/customer-accounts/{accountId}", wrap(c.getCustomerAccount))
}

func (c *CustomerAccountController) createCustomerAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateCustomerAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerAccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerAccountResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.CreateCustomerAccount(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	logResponse(r, http.StatusCreated, response, start)
	writeJSON(w, http.StatusCreated, response)
}

func (c *CustomerAccountController) getCustomerAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	accountID, err := strconv.ParseInt(r.PathValue("accountId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerAccountResponse]("validation failed", "accountId must be numeric"))
		return
	}

	response, err := c.service.GetCustomerAccount(r.Context(), accountID)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}
