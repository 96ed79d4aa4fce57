package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"precisionpercent/calc"
	"precisionpercent/model"
)

var errBlankQuestion = errors.New("question is blank")

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Calculate handles POST /calculate. Inputs that do not parse are not an
// error: the response carries computed=false and the placeholder display.
func (s *Server) Calculate(w http.ResponseWriter, r *http.Request) {
	requestID := RequestIDFromContext(r.Context())
	ctx, span := s.tracer.Start(r.Context(), "percent.calculate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()
	logger := loggerWithTrace(s.logger, ctx)

	var req CalculateRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(span, logger, "calculate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	mode, err := calc.ParseMode(req.Mode)
	if err != nil {
		s.fail(span, logger, "calculate", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	span.SetAttributes(attribute.String("percent.mode", mode.String()))

	resp := CalculateResponse{
		Mode:    mode,
		A:       req.A,
		B:       req.B,
		Display: calc.Placeholder,
	}

	result, ok := calc.Evaluate(mode, req.A, req.B)
	outcome := "unparsed"
	if ok {
		s.recordResult(result)

		resp.Computed = true
		resp.Value = finiteOrNil(result.Value)
		resp.Display = calc.FormatResult(mode, result.Value)

		outcome = "computed"
		if resp.Value == nil {
			outcome = "non_finite"
		}
		span.AddEvent("computation.complete", trace.WithAttributes(
			attribute.String("display", resp.Display),
		))
	}
	s.metrics.calculations.WithLabelValues(mode.String(), outcome).Inc()
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation served",
		zap.String("mode", mode.String()),
		zap.String("outcome", outcome),
		zap.String("display", resp.Display),
		zap.String("request_id", requestID),
	)

	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /history.
func (s *Server) History(w http.ResponseWriter, r *http.Request) {
	entries := s.historyEntries()

	resp := HistoryResponse{Entries: make([]HistoryItem, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, HistoryItem{
			ID:         e.ID.String(),
			Mode:       e.Mode,
			A:          calc.FormatOperand(e.A),
			B:          calc.FormatOperand(e.B),
			Value:      finiteOrNil(e.Value),
			Display:    calc.FormatResult(e.Mode, e.Value),
			ComputedAt: e.ComputedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Ask handles POST /ask. Provider failures are answered with the fallback
// text and a 200 status; only malformed or blank questions are rejected.
func (s *Server) Ask(w http.ResponseWriter, r *http.Request) {
	requestID := RequestIDFromContext(r.Context())
	ctx, span := s.tracer.Start(r.Context(), "percent.ask",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()
	logger := loggerWithTrace(s.logger, ctx)

	var req AskRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(span, logger, "ask", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if model.IsBlank(req.Question) {
		s.fail(span, logger, "ask", errBlankQuestion.Error(), errBlankQuestion, http.StatusBadRequest, w)
		return
	}

	start := time.Now()
	answer := s.assistant.Resolve(ctx, req.Question)
	elapsed := time.Since(start)

	s.metrics.queries.WithLabelValues(string(answer.Outcome)).Inc()
	s.metrics.queryDuration.Observe(elapsed.Seconds())

	span.SetAttributes(attribute.String("percent.outcome", string(answer.Outcome)))
	if answer.Outcome == model.OutcomeFailed {
		span.SetStatus(codes.Error, "provider request failed")
	} else {
		span.SetStatus(codes.Ok, "")
	}

	logger.Info("question settled",
		zap.String("outcome", string(answer.Outcome)),
		zap.Duration("duration", elapsed),
		zap.String("request_id", requestID),
	)

	writeJSON(w, http.StatusOK, AskResponse{Answer: answer.Text, Outcome: answer.Outcome})
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := s.validate.Struct(dst); err != nil {
		return fmt.Errorf("validate body: %w", err)
	}
	return nil
}

// fail records err on the span, logs it and writes a JSON error response.
func (s *Server) fail(span trace.Span, logger *zap.Logger, opName, msg string, err error, status int, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	logger.Warn(msg,
		zap.String("operation", opName),
		zap.Error(err),
	)

	WriteError(w, status, msg)
}
