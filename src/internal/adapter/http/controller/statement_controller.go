package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/models"
	"github.com/cbank/secure-statement-delivery/src/internal/commons"
	"github.com/cbank/secure-statement-delivery/src/internal/domain"
)

type StatementService interface {
	GenerateStatement(ctx context.Context, req models.GenerateStatementRequest) (commons.Response[models.GenerateStatementResponse], error)
}

type StatementController struct {
	service StatementService
}

func NewStatementController(service StatementService) *StatementController {
	return &StatementController{service: service}
}

func (c *StatementController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	var handler http.Handler = http.HandlerFunc(c.generateStatement)
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("POST /api/v1/statements/create", handler)
}

func (c *StatementController) generateStatement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.GenerateStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.GenerateStatementResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.GenerateStatementResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.GenerateStatement(r.Context(), req)
	if err != nil {
		status := statusForError(err, response.Message)
		logError(r, err, nil)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusCreated, response, start)
	writeJSON(w, http.StatusCreated, response)
}

// statusForError maps the domain error taxonomy onto response codes. Backend
// failures stay generic 500s; the full cause has already been logged.
func statusForError(err error, message string) int {
	switch {
	case message == "validation failed":
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConstraintViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
