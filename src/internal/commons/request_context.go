package commons

import "context"

const AnonymousActor = "anonymous"

// RequestScope carries the per-request audit context: a correlation id, the
// authenticated actor (or "anonymous") and the originating client IP. It is
// threaded explicitly through the call chain instead of living in any global
// state.
type RequestScope struct {
	TraceID string
	Actor   string
	IP      string
}

type requestScopeKey struct{}

func WithRequestScope(ctx context.Context, scope RequestScope) context.Context {
	return context.WithValue(ctx, requestScopeKey{}, scope)
}

// RequestScopeFrom returns the scope stored on the context, or an anonymous
// scope when none was set (background jobs, tests).
func RequestScopeFrom(ctx context.Context) RequestScope {
	if scope, ok := ctx.Value(requestScopeKey{}).(RequestScope); ok {
		return scope
	}
	return RequestScope{Actor: AnonymousActor}
}

// WithActor overrides the actor on an existing scope, used once a request has
// authenticated past the boundary middleware.
func WithActor(ctx context.Context, actor string) context.Context {
	scope := RequestScopeFrom(ctx)
	scope.Actor = actor
	return WithRequestScope(ctx, scope)
}
