package middleware

import (
	"net/http"

	"github.com/cbank/secure-statement-delivery/src/internal/commons"
	"github.com/google/uuid"
)

// RequestContext seeds every request with its audit scope: a fresh trace id,
// the client IP and the anonymous actor. Authentication further in may
// replace the actor.
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := commons.RequestScope{
				TraceID: uuid.NewString(),
				Actor:   commons.AnonymousActor,
				IP:      ClientIP(r),
			}

			next.ServeHTTP(w, r.WithContext(commons.WithRequestScope(r.Context(), scope)))
		})
	}
}
