// Package main provides the entry point for the standalone lifecycle sweeper.
// It runs the same sweep loop as the server without serving HTTP, for
// deployments that keep the API and the scheduler in separate processes.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	assignmentRepository "github.com/reviewhub/reviewcycles/internal/assignment/repository"
	"github.com/reviewhub/reviewcycles/internal/audit"
	"github.com/reviewhub/reviewcycles/internal/clock"
	appConfig "github.com/reviewhub/reviewcycles/internal/config"
	cycleRepository "github.com/reviewhub/reviewcycles/internal/cycle/repository"
	cycleService "github.com/reviewhub/reviewcycles/internal/cycle/service"
	"github.com/reviewhub/reviewcycles/internal/database/database"
	scoringRepository "github.com/reviewhub/reviewcycles/internal/scoring/repository"
	scoringService "github.com/reviewhub/reviewcycles/internal/scoring/service"
	"github.com/reviewhub/reviewcycles/internal/sweeper"
	"github.com/reviewhub/reviewcycles/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zapLogger.Errorw("failed to close database", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.SystemClock{}

	cycleRepo := cycleRepository.New(db)
	assignmentRepo := assignmentRepository.New(db)
	scoreRepo := scoringRepository.New(db)
	auditor := audit.New(db, zapLogger)

	scoringSvc := scoringService.New(scoreRepo, assignmentRepo, cycleRepo, clk, zapLogger)
	orchestrator := cycleService.OrchestratorFunc(func(ctx context.Context, cycleID string) error {
		_, runErr := scoringSvc.RunForCycle(ctx, cycleID)
		return runErr
	})
	cycleSvc := cycleService.New(cycleRepo, auditor, orchestrator, clk, zapLogger)

	sweeper.New(cycleSvc, cfg.Sweep, zapLogger).Run(ctx)
}
