package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cbank/secure-statement-delivery/src/internal/logger"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the bucket map. Once exceeded, buckets idle for
// longer than the refill window are swept so the map cannot grow without
// limit across many distinct client IPs.
const maxTrackedClients = 10_000

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one greedy token bucket per client key. Tokens accrue
// continuously with elapsed time up to the configured capacity, and a single
// admit consumes one token. Per-key consumption is serialized under the map
// lock, so two concurrent callers can never both take the last token.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*clientBucket
	capacity int
	window   time.Duration
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*clientBucket),
		capacity: capacity,
		window:   window,
	}
}

// Admit attempts to consume one token for the client key and reports whether
// the request may proceed. It never blocks.
func (l *RateLimiter) Admit(clientKey string) bool {
	return l.admitAt(clientKey, time.Now())
}

func (l *RateLimiter) admitAt(clientKey string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[clientKey]
	if !ok {
		if len(l.buckets) >= maxTrackedClients {
			l.evictIdleLocked(now)
		}
		bucket = &clientBucket{
			limiter: rate.NewLimiter(rate.Limit(float64(l.capacity)/l.window.Seconds()), l.capacity),
		}
		l.buckets[clientKey] = bucket
	}
	bucket.lastSeen = now

	return bucket.limiter.AllowN(now, 1)
}

// evictIdleLocked drops buckets not seen for a full refill window. An evicted
// client simply starts over with a fresh full bucket, which is the same
// outcome a process restart gives everyone.
func (l *RateLimiter) evictIdleLocked(now time.Time) {
	for key, bucket := range l.buckets {
		if now.Sub(bucket.lastSeen) >= l.window {
			delete(l.buckets, key)
		}
	}
}

// RateLimit is the admission filter every inbound request passes through
// before any other handling. Denied requests get a 429 with a retry-after
// hint of one window.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientKey := ClientIP(r)

			if !limiter.Admit(clientKey) {
				logger.Info("rate limit middleware request denied", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"client": clientKey,
				})
				w.Header().Set("X-Rate-Limit-Retry-After-Seconds", strconv.Itoa(int(limiter.window.Seconds())))
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP derives the rate-limit and audit key for a request: the first
// entry of an X-Forwarded-For chain when present, else the transport peer.
func ClientIP(r *http.Request) string {
	forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return r.RemoteAddr
}
