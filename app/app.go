// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"demo-bank-api/config"
	"demo-bank-api/db"
	"demo-bank-api/events"
	"demo-bank-api/handler"
	"demo-bank-api/logger"
	"demo-bank-api/repository"
	"demo-bank-api/router"
	"demo-bank-api/service"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// App is the wired application: every layer built on top of one database pool.
type App struct {
	DB       *sql.DB
	Router   http.Handler
	Accounts *service.AccountService
}

// New wires repositories, services, handlers and the router. A nil cache disables
// profile caching and a nil publisher drops transfer events.
func New(database *sql.DB, cache service.ICacheClient, publisher events.Publisher) *App {
	cfg := config.AppConfig

	accountRepo := repository.NewAccountRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)

	tokenService := service.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.TTL)
	accountService := service.NewAccountService(accountRepo, cache)
	authService := service.NewAuthService(accountRepo, tokenService, cfg.Demo.AccountNumber)
	transactionService := service.NewTransactionService(database, accountRepo, transactionRepo, accountService, publisher)

	r := router.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(accountService),
		handler.NewTransactionHandler(transactionService),
		router.Options{
			AllowedOrigins: cfg.AllowedOrigins(),
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		},
	)

	return &App{DB: database, Router: r, Accounts: accountService}
}

func Run() {
	logger.Init()
	if err := config.LoadConfig("."); err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect(config.AppConfig.Database.URL)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	ctx := context.Background()

	// Keep the cache a nil interface when Redis is not configured.
	var cache service.ICacheClient
	if url := config.AppConfig.Redis.URL; url != "" {
		rdb, err := db.ConnectRedis(ctx, url)
		if err != nil {
			logger.Log.WithError(err).Warn("Redis unavailable, profile caching disabled")
		} else {
			defer rdb.Close()
			cache = rdb
		}
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if url := config.AppConfig.RabbitMQ.URL; url != "" {
		producer, err := events.NewEventProducer(url, config.AppConfig.RabbitMQ.Exchange)
		if err != nil {
			logger.Log.WithError(err).Warn("RabbitMQ unavailable, transfer events disabled")
		} else {
			publisher = producer
		}
	}
	defer publisher.Close()

	a := New(database, cache, publisher)

	if _, err := a.Accounts.ProvisionDemoAccount(ctx, config.AppConfig.Demo.AccountNumber); err != nil {
		logger.Log.Fatalf("Error provisioning demo account: %v", err)
	}

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
