package main

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"precisionpercent/config"
	"precisionpercent/model"
	"precisionpercent/provider"
	"precisionpercent/server"
)

// runServer starts the HTTP API: precisionpercent serve [-addr :8080]
func runServer(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", cfg.ServerAddr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()

	// Logger
	logger, err := server.NewLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Tracing
	traceShutdown, err := server.InitTracing(ctx)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() { _ = traceShutdown(ctx) }()

	for _, warning := range cfg.Warnings {
		logger.Warn("configuration warning", zap.String("warning", warning))
	}

	p := provider.InitializeProvider(cfg)
	if p == nil {
		logger.Warn("no provider available, /ask will answer with the error fallback",
			zap.String("provider", cfg.Provider))
	} else {
		logger.Info("provider ready",
			zap.String("provider", cfg.Provider),
			zap.String("model", p.GetModel()))
	}

	s := server.New(model.NewAssistant(p), logger)
	return s.ListenAndServe(ctx, *addr)
}
