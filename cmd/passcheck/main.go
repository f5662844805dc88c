package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/passcheck/internal/config"
	"github.com/jwalitptl/passcheck/internal/handler/console"
	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize logger
	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: cfg.Log.TimeFormat,
	})

	// Initialize services
	sessionMetrics := metrics.New("passcheck")
	strengthSvc := strengthService.NewService(cfg.CheckMode(), sessionMetrics, appLogger)

	// Initialize handler
	consoleHandler := console.NewHandler(strengthSvc, os.Stdout, appLogger)
	sessionLogger := appLogger.WithFields(map[string]interface{}{"session_id": consoleHandler.SessionID()})
	sessionLogger.Debug("Starting password checker", "mode", string(strengthSvc.Mode()))

	if err := consoleHandler.Run(context.Background(), os.Stdin); err != nil {
		// A broken input or output stream ends the session like end of input.
		sessionLogger.ZL.Debug().Err(err).Msg("Session ended on stream error")
	}

	summary, err := sessionMetrics.Snapshot()
	if err != nil {
		sessionLogger.ZL.Debug().Err(err).Msg("Failed to gather session metrics")
		return
	}
	sessionLogger.ZL.Info().
		Int("evaluations", summary.Evaluations).
		Int("strong", summary.Strong).
		Interface("rule_failures", summary.RuleFailures).
		Msg("Session finished")
}
