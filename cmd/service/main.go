package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/notebook-service/internal/config"
	"gitlab.com/dirk.krummacker/notebook-service/internal/logger"
	"gitlab.com/dirk.krummacker/notebook-service/internal/metrics"
	"gitlab.com/dirk.krummacker/notebook-service/internal/service"
	"gitlab.com/dirk.krummacker/notebook-service/internal/storage"
	"go.uber.org/zap"
)

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Usage example on the command line:
// > NOTEBOOK_ADDR=:8080 NOTEBOOK_DB_DSN=notebook.db NOTEBOOK_GIN_MODE=release go run main.go
//
// The API description is kept in internal/docs; regenerate it from the handler annotations with
// > swag init -d ./internal/service,./internal/model -g service.go -o internal/docs
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load configuration:", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "could not initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Close() }()

	if err := run(cfg); err != nil {
		logger.Fatal("service stopped with error", zap.Error(err))
	}
}

// run owns the lifecycle of the store: it is opened first and closed after the HTTP server has
// shut down.
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqlDB, err := storage.Open(ctx, cfg.DBDriver, cfg.DBDSN, storage.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	if err := storage.EnsureSchema(ctx, sqlDB, cfg.DBDriver); err != nil {
		_ = sqlDB.Close()
		return err
	}

	var recorder *metrics.Recorder
	var storeOpts []storage.Option
	if cfg.MetricsEnabled {
		recorder = metrics.New()
		storeOpts = append(storeOpts, storage.WithRecorder(recorder))
	}
	store, err := storage.New(ctx, sqlDB, cfg.DBDriver, storeOpts...)
	if err != nil {
		_ = sqlDB.Close()
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close store", zap.Error(err))
		}
	}()

	gin.SetMode(cfg.GinMode)
	router := service.SetupHttpRouter(store, service.Options{
		Logger:         logger.Get(),
		Metrics:        recorder,
		RequestLogging: cfg.RequestLogging,
		DebugErrors:    cfg.DebugErrors,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running",
			zap.String("addr", cfg.Addr),
			zap.String("db_driver", cfg.DBDriver),
			zap.String("env", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
