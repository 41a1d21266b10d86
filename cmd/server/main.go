// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	assignmentRepository "github.com/reviewhub/reviewcycles/internal/assignment/repository"
	assignmentRouter "github.com/reviewhub/reviewcycles/internal/assignment/router"
	"github.com/reviewhub/reviewcycles/internal/audit"
	"github.com/reviewhub/reviewcycles/internal/clock"
	appConfig "github.com/reviewhub/reviewcycles/internal/config"
	cycleRepository "github.com/reviewhub/reviewcycles/internal/cycle/repository"
	cycleRouter "github.com/reviewhub/reviewcycles/internal/cycle/router"
	cycleService "github.com/reviewhub/reviewcycles/internal/cycle/service"
	"github.com/reviewhub/reviewcycles/internal/database/database"
	"github.com/reviewhub/reviewcycles/internal/database/migrate"
	"github.com/reviewhub/reviewcycles/internal/health"
	"github.com/reviewhub/reviewcycles/internal/middleware"
	scoringRepository "github.com/reviewhub/reviewcycles/internal/scoring/repository"
	scoringRouter "github.com/reviewhub/reviewcycles/internal/scoring/router"
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

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.SystemClock{}

	cycleRepo := cycleRepository.New(db)
	assignmentRepo := assignmentRepository.New(db)
	scoreRepo := scoringRepository.New(db)
	auditor := audit.New(db, zapLogger)

	scoringSvc := scoringService.New(scoreRepo, assignmentRepo, cycleRepo, clk, zapLogger)

	// The cycle service only needs to trigger a scoring run; the summary is
	// logged by the scoring service itself.
	orchestrator := cycleService.OrchestratorFunc(func(ctx context.Context, cycleID string) error {
		_, runErr := scoringSvc.RunForCycle(ctx, cycleID)
		return runErr
	})

	cycleSvc := cycleService.New(cycleRepo, auditor, orchestrator, clk, zapLogger)

	go sweeper.New(cycleSvc, cfg.Sweep, zapLogger).Run(ctx)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Recovery(zapLogger))

	r.GET("/health", health.New(db, zapLogger).Check)

	cycleRouter.RegisterRoutes(r, cycleSvc, zapLogger)
	assignmentRouter.RegisterRoutes(r, db, zapLogger)
	scoringRouter.RegisterRoutes(r, scoringSvc, zapLogger)

	address := cfg.Server.GetAddress()
	zapLogger.Infow("starting server", "address", address)
	if err := r.Run(address); err != nil {
		zapLogger.Fatalw("failed to start server", "error", err)
	}
}
