package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/transfer-engine/internal/config"
	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/eventbus"
	"github.com/grachmannico95/transfer-engine/internal/handler"
	"github.com/grachmannico95/transfer-engine/internal/security"
	"github.com/grachmannico95/transfer-engine/internal/server"
	"github.com/grachmannico95/transfer-engine/internal/service"
	"github.com/grachmannico95/transfer-engine/internal/settlement"
	"github.com/grachmannico95/transfer-engine/internal/storage"
	"github.com/grachmannico95/transfer-engine/internal/storage/postgres"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	hasher := security.NewHasher(cfg.Transfer.SecretHashCost)

	var repo domain.Repository
	if cfg.Database.URL != "" {
		pool, err := postgres.Connect(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal(ctx, "Failed to connect to database",
				"error", err,
			)
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal(ctx, "Failed to apply schema",
				"error", err,
			)
		}

		repo = postgres.NewStore(pool, hasher)
		log.Info(ctx, "Postgres repository initialized")
	} else {
		repo = storage.NewMemoryStore()
		log.Info(ctx, "In-memory repository initialized")
	}

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
		RetryDelay:    cfg.Worker.RetryDelay,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	auditConsumer := eventbus.NewAuditConsumer(
		repo,
		log,
		cfg.Worker.PoolSize,
	)
	log.Info(ctx, "Audit consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	err := eventbus.SubscribeTransferEvents(bus, auditConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	authority := settlement.NewSimulatedAuthority(settlement.SimulatedConfig{
		AuthorizeLatency:    cfg.Settlement.AuthorizeLatency,
		NotifyLatency:       cfg.Settlement.NotifyLatency,
		ConfirmLatency:      cfg.Settlement.ConfirmLatency,
		MaxAuthorizedAmount: cfg.Settlement.MaxAuthorizedAmount,
	})
	settlementClient := settlement.NewClient(authority, settlement.ClientConfig{
		CallTimeout:         cfg.Settlement.CallTimeout,
		MaxRequests:         cfg.Breaker.MaxRequests,
		Interval:            cfg.Breaker.Interval,
		Timeout:             cfg.Breaker.Timeout,
		ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
	}, log)
	log.Info(ctx, "Settlement client initialized")

	transferService := service.NewTransferService(
		repo,
		repo,
		settlementClient,
		bus,
		service.TransferConfig{
			InstitutionID:     cfg.Transfer.InstitutionID,
			CompensationDelay: cfg.Transfer.CompensationDelay,
			Timeout:           cfg.Transfer.Timeout,
		},
		log,
	)
	directoryService := service.NewDirectoryService(repo, hasher, log)
	log.Info(ctx, "Services initialized")

	transferHandler := handler.NewTransferHandler(transferService, log)
	directoryHandler := handler.NewDirectoryHandler(directoryService, log)
	healthHandler := handler.NewHealthHandler(settlementClient, bus)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, transferHandler, directoryHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests first so no new events are published, then
	// drain the event bus.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
