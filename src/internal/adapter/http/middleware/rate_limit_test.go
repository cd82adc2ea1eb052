package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

func TestRateLimiterExhaustsCapacity(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	now := time.Now()

	for i := 0; i < 10; i++ {
		if !limiter.admitAt("10.0.0.1", now) {
			t.Fatalf("expected call %d to be admitted", i+1)
		}
	}
	if limiter.admitAt("10.0.0.1", now) {
		t.Fatal("expected the 11th call to be denied")
	}
}

func TestRateLimiterRefillsWithElapsedTime(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	now := time.Now()

	for i := 0; i < 10; i++ {
		limiter.admitAt("10.0.0.1", now)
	}
	if limiter.admitAt("10.0.0.1", now) {
		t.Fatal("expected bucket to be empty")
	}

	// Refill is continuous: a tenth of the window restores one token.
	if !limiter.admitAt("10.0.0.1", now.Add(6*time.Second)) {
		t.Fatal("expected one token after a partial window")
	}

	// A full window later the bucket is back at capacity.
	later := now.Add(2 * time.Minute)
	for i := 0; i < 10; i++ {
		if !limiter.admitAt("10.0.0.1", later) {
			t.Fatalf("expected call %d to be admitted after a full window", i+1)
		}
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	now := time.Now()

	for i := 0; i < 10; i++ {
		limiter.admitAt("10.0.0.1", now)
	}

	if !limiter.admitAt("10.0.0.2", now) {
		t.Fatal("expected a different client to have its own bucket")
	}
}

func TestRateLimiterConcurrentCallersNeverExceedCapacity(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)

	var admitted int32
	var group errgroup.Group
	for i := 0; i < 20; i++ {
		group.Go(func() error {
			if limiter.Admit("10.0.0.1") {
				atomic.AddInt32(&admitted, 1)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if admitted > 10 {
		t.Fatalf("expected at most 10 admitted calls before refill, got %d", admitted)
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	now := time.Now()

	for i := 0; i < maxTrackedClients; i++ {
		limiter.admitAt(fmt.Sprintf("10.0.%d.%d", i/256, i%256), now)
	}
	if len(limiter.buckets) != maxTrackedClients {
		t.Fatalf("expected %d tracked clients, got %d", maxTrackedClients, len(limiter.buckets))
	}

	limiter.admitAt("192.168.0.1", now.Add(2*time.Minute))
	if len(limiter.buckets) != 1 {
		t.Fatalf("expected idle buckets swept, got %d", len(limiter.buckets))
	}
}

func TestRateLimitMiddlewareDeniesWith429(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	handler := RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statements/create", nil)
	req.RemoteAddr = "10.0.0.5:51234"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected first request admitted, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("X-Rate-Limit-Retry-After-Seconds") != "60" {
		t.Fatalf("expected retry-after hint of 60 seconds, got %q", rr.Header().Get("X-Rate-Limit-Retry-After-Seconds"))
	}
}

func TestClientIPPrefersFirstForwardedEntry(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if ip := ClientIP(req); ip != "203.0.113.7" {
		t.Fatalf("expected first forwarded entry, got %q", ip)
	}

	req.Header.Del("X-Forwarded-For")
	if ip := ClientIP(req); ip != "127.0.0.1:9999" {
		t.Fatalf("expected transport peer, got %q", ip)
	}
}
