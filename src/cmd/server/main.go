package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cbank/secure-statement-delivery/src/internal/adapter/document"
	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/controller"
	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/middleware"
	"github.com/cbank/secure-statement-delivery/src/internal/adapter/http/router"
	"github.com/cbank/secure-statement-delivery/src/internal/adapter/repository/postgres"
	"github.com/cbank/secure-statement-delivery/src/internal/adapter/storage"
	"github.com/cbank/secure-statement-delivery/src/internal/config"
	"github.com/cbank/secure-statement-delivery/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	fileStorage, err := storage.NewFileStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageUseSSL,
		cfg.LinkExpiryMins,
	)
	if err != nil {
		log.Fatalf("create file storage: %v", err)
	}

	accountRepo := postgres.NewCustomerAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	statementRepo := postgres.NewStatementRepository(db)
	auditLogRepo := postgres.NewAuditLogRepository(db)

	auditRecorder := services.NewAuditLogService(auditLogRepo)
	fileCreator := document.NewPDFCreator(cfg.PDFMasterSecret)

	statementService := services.NewStatementService(
		statementRepo,
		transactionRepo,
		accountRepo,
		fileCreator,
		fileStorage,
		auditRecorder,
		cfg.RetrievalURLBase,
	)
	transactionService := services.NewTransactionService(transactionRepo, accountRepo, auditRecorder)
	accountService := services.NewCustomerAccountService(accountRepo, auditRecorder)

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	mux := router.New(
		controller.NewStatementController(statementService),
		controller.NewPublicController(statementService),
		controller.NewTransactionController(transactionService),
		controller.NewCustomerAccountController(accountService),
		authMiddleware,
	)

	// Admission control sits in front of everything, including the public
	// retrieval endpoint; the request scope middleware seeds the audit
	// context for whatever gets through.
	limiter := middleware.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	handler := middleware.RateLimit(limiter)(middleware.RequestContext()(mux))

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("secure statement delivery listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
