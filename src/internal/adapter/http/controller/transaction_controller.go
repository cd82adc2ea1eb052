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

type TransactionService interface {
	GetTransactionsByAccountID(ctx context.Context, accountID int64) (commons.Response[[]models.TransactionResponse], error)
	GetTransactionByID(ctx context.Context, transactionID int64) (commons.Response[models.TransactionResponse], error)
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(handler)
		}
		return handler
	}

	mux.Handle("GET /api/v1/transactions/account/{accountId}", wrap(c.getTransactionsByAccountID))
	mux.Handle("GET /api/v1/transactions/{transactionId}", wrap(c.getTransactionByID))
	mux.Handle("POST /api/v1/transactions/create", wrap(c.createTransaction))
}

func (c *TransactionController) getTransactionsByAccountID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	accountID, err := strconv.ParseInt(r.PathValue("accountId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.TransactionResponse]("validation failed", "accountId must be numeric"))
		return
	}

	response, err := c.service.GetTransactionsByAccountID(r.Context(), accountID)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *TransactionController) getTransactionByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	transactionID, err := strconv.ParseInt(r.PathValue("transactionId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("validation failed", "transactionId must be numeric"))
		return
	}

	response, err := c.service.GetTransactionByID(r.Context(), transactionID)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *TransactionController) createTransaction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.CreateTransaction(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	logResponse(r, http.StatusCreated, response, start)
	writeJSON(w, http.StatusCreated, response)
}
