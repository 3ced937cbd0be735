// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"go-ledger-api/config"
	"go-ledger-api/db"
	"go-ledger-api/handler"
	"go-ledger-api/logger"
	"go-ledger-api/repository"
	"go-ledger-api/router"
	"go-ledger-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---
	// Repositories, services and handlers are created here and injected
	// top-down.
	accountRepo := repository.NewAccountRepository(database)
	accountService := service.NewAccountService(accountRepo, redisClient)
	accountHandler := handler.NewAccountHandler(accountService)

	transferService := service.NewTransferService(database, accountRepo, redisClient)
	transferHandler := handler.NewTransferHandler(transferService)

	r := router.NewRouter(accountHandler, transferHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp bundles a fully wired router with its backing connections for
// integration tests.
type TestApp struct {
	DB     *sql.DB
	Redis  *redis.Client
	Router http.Handler

	AccountService  *service.AccountService
	TransferService *service.TransferService
}

// NewTestApp wires the full application against the given connections.
func NewTestApp(database *sql.DB, redisClient *redis.Client) *TestApp {
	accountRepo := repository.NewAccountRepository(database)
	accountService := service.NewAccountService(accountRepo, redisClient)
	accountHandler := handler.NewAccountHandler(accountService)

	transferService := service.NewTransferService(database, accountRepo, redisClient)
	transferHandler := handler.NewTransferHandler(transferService)

	return &TestApp{
		DB:              database,
		Redis:           redisClient,
		Router:          router.NewRouter(accountHandler, transferHandler),
		AccountService:  accountService,
		TransferService: transferService,
	}
}
