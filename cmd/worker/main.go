package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier/internal/application/quote/usecases"
	"atelier/internal/domain/analytics"
	"atelier/internal/infrastructure/config"
	"atelier/internal/infrastructure/database"
	"atelier/internal/infrastructure/repository"
	"atelier/internal/shared/biztime"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

// The worker runs the periodic maintenance passes: expiring stale quotes
// and pruning old journey events.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting maintenance worker", "environment", env)

	utils.MustInitTimezone(cfg.Business.Timezone)

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	quoteRepo := repository.NewQuoteRepository(database.Get(), log)
	eventRepo := repository.NewJourneyEventRepository(database.Get(), log)
	expireUC := usecases.NewExpireQuotesUseCase(quoteRepo, log)

	sweepInterval := time.Duration(cfg.Business.QuoteSweepMinutes) * time.Minute
	if sweepInterval <= 0 {
		sweepInterval = 60 * time.Minute
	}
	retention := time.Duration(cfg.Business.AnalyticsRetentionDays) * 24 * time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	log.Infow("maintenance worker started", "sweep_interval", sweepInterval)

	runSweep(ctx, expireUC, eventRepo, retention, log)

	for {
		select {
		case <-ticker.C:
			runSweep(ctx, expireUC, eventRepo, retention, log)
		case sig := <-sigChan:
			log.Infow("shutting down maintenance worker", "signal", sig.String())
			return
		}
	}
}

func runSweep(
	ctx context.Context,
	expireUC *usecases.ExpireQuotesUseCase,
	eventRepo analytics.Repository,
	retention time.Duration,
	log logger.Interface,
) {
	expired, err := expireUC.Execute(ctx)
	if err != nil {
		log.Errorw("quote expiry sweep failed", "error", err)
	} else if expired > 0 {
		log.Infow("expired stale quotes", "count", expired)
	}

	if retention <= 0 {
		return
	}
	cutoff := biztime.NowUTC().Add(-retention)
	deleted, err := eventRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Errorw("journey event pruning failed", "error", err)
	} else if deleted > 0 {
		log.Infow("pruned old journey events", "count", deleted, "cutoff", cutoff)
	}
}
