package router

import "net/http"

type StatementRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type PublicRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type TransactionRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type CustomerAccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	statementController StatementRouteRegistrar,
	publicController PublicRouteRegistrar,
	transactionController TransactionRouteRegistrar,
	customerAccountController CustomerAccountRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if statementController != nil {
		statementController.RegisterRoutes(mux, authMiddleware)
	}
	if publicController != nil {
		publicController.RegisterRoutes(mux, nil)
	}
	if transactionController != nil {
		transactionController.RegisterRoutes(mux, authMiddleware)
	}
	if customerAccountController != nil {
		customerAccountController.RegisterRoutes(mux, authMiddleware)
	}

	return mux
}
