// Package server exposes the calculator and the assistant over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"precisionpercent/calc"
	"precisionpercent/model"
)

// Server owns the state shared by all requests. The history is recorded
// server-wide and guarded by mu.
type Server struct {
	assistant *model.Assistant
	logger    *zap.Logger
	metrics   *Metrics
	validate  *validator.Validate
	tracer    trace.Tracer

	mu      sync.Mutex
	history model.History
}

// New creates a Server. A nil logger discards output.
func New(assistant *model.Assistant, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		assistant: assistant,
		logger:    logger,
		metrics:   NewMetrics(),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		tracer:    otel.Tracer("precisionpercent/server"),
	}
}

// ListenAndServe serves on addr until SIGINT or SIGTERM, then shuts down
// within five seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("server stopping")
	return srv.Shutdown(shutdownCtx)
}

// recordResult is the only writer of the shared history.
func (s *Server) recordResult(r calc.Result) model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Push(r)
}

func (s *Server) historyEntries() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}
