package controller

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type StatementDownloader interface {
	DownloadStatementUsingToken(ctx context.Context, retrievalToken string) ([]byte, error)
}

// PublicController serves the unauthenticated retrieval endpoint. Every
// failure collapses into a bare 400 so the caller learns nothing about
// whether a token was malformed, unknown, expired or the backend fetch broke.
type PublicController struct {
	service StatementDownloader
}

func NewPublicController(service StatementDownloader) *PublicController {
	return &PublicController{service: service}
}

func (c *PublicController) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/v1/public/{retrievalToken}", c.downloadStatement)
}

func (c *PublicController) downloadStatement(w http.ResponseWriter, r *http.Request) {
	token, err := uuid.Parse(r.PathValue("retrievalToken"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	document, err := c.service.DownloadStatementUsingToken(r.Context(), token.String())
	if err != nil {
		logError(r, err, nil)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}
