package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cbank/secure-statement-delivery/src/internal/domain"
	"github.com/google/uuid"
)

type downloaderStub struct {
	downloadFn func(ctx context.Context, retrievalToken string) ([]byte, error)
}

func (s downloaderStub) DownloadStatementUsingToken(ctx context.Context, retrievalToken string) ([]byte, error) {
	if s.downloadFn != nil {
		return s.downloadFn(ctx, retrievalToken)
	}
	return nil, domain.ErrInvalidToken
}

func newPublicMux(stub downloaderStub) *http.ServeMux {
	mux := http.NewServeMux()
	NewPublicController(stub).RegisterRoutes(mux, nil)
	return mux
}

func TestPublicControllerReturnsDocument(t *testing.T) {
	document := []byte("%PDF-1.7 body")
	mux := newPublicMux(downloaderStub{
		downloadFn: func(_ context.Context, _ string) ([]byte, error) {
			return document, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", rr.Header().Get("Content-Type"))
	}
	if rr.Body.String() != string(document) {
		t.Fatal("expected document bytes in response body")
	}
}

func TestPublicControllerRejectsMalformedToken(t *testing.T) {
	called := false
	mux := newPublicMux(downloaderStub{
		downloadFn: func(_ context.Context, _ string) ([]byte, error) {
			called = true
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if called {
		t.Fatal("expected no service call for a malformed token")
	}
}

func TestPublicControllerHidesFailureDetail(t *testing.T) {
	for _, failure := range []error{domain.ErrInvalidToken, domain.ErrRetrievalFailed} {
		mux := newPublicMux(downloaderStub{
			downloadFn: func(_ context.Context, _ string) ([]byte, error) {
				return nil, failure
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/public/"+uuid.NewString(), nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", failure, rr.Code)
		}
		if rr.Body.Len() != 0 {
			t.Fatalf("expected empty body for %v, got %q", failure, rr.Body.String())
		}
	}
}
