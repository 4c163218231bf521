package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/patronly/boost-ledger/internal/adapter"
	"github.com/patronly/boost-ledger/internal/config"
	"github.com/patronly/boost-ledger/internal/leaderboard"
	"github.com/patronly/boost-ledger/internal/logger"
	temporal "github.com/patronly/boost-ledger/internal/providers/temporal"
	"github.com/patronly/boost-ledger/internal/store"
	"github.com/patronly/boost-ledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize clock adapter
	clock := adapter.NewClock()

	// Connect to Temporal for confirmation re-scheduling
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.Fatal("Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Initialize retry sweeper
	retrySweeperConfig := &sweeper.RetrySweeperConfig{
		Interval:       cfg.RetrySweep.Interval,
		BatchSize:      cfg.RetrySweep.BatchSize,
		WorkerPoolSize: cfg.RetrySweep.Worker.PoolSize,
	}
	retrySweeper := sweeper.NewRetrySweeper(retrySweeperConfig, dataStore, clock, temporalClient, cfg.Temporal.ConfirmTaskQueue)

	logger.InfoCtx(ctx, "Initialized retry sweeper",
		zap.Duration("interval", cfg.RetrySweep.Interval),
		zap.Int("batch_size", cfg.RetrySweep.BatchSize),
		zap.Int("worker_pool_size", cfg.RetrySweep.Worker.PoolSize),
	)

	// Initialize leaderboard sweeper
	aggregator := leaderboard.NewAggregator(dataStore, clock)
	leaderboardSweeper := sweeper.NewLeaderboardSweeper(cfg.Leaderboard.Interval, aggregator, clock)

	logger.InfoCtx(ctx, "Initialized leaderboard sweeper",
		zap.Duration("interval", cfg.Leaderboard.Interval),
	)

	// Start the sweepers in goroutines
	sweepers := []sweeper.Sweeper{retrySweeper, leaderboardSweeper}
	errChan := make(chan error, len(sweepers))
	for _, s := range sweepers {
		go func(s sweeper.Sweeper) {
			if err := s.Start(ctx); err != nil {
				errChan <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(s)
	}

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweepers
	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	for _, s := range sweepers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", s.Name()))
		}
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
