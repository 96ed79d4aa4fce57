package server

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

// NewLogger returns the JSON stdout logger used in server mode.
func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

// InitTracing installs an OTLP/HTTP tracer provider when an endpoint is
// configured. Without one, spans stay on the global no-op provider.
func InitTracing(ctx context.Context) (func(context.Context) error, error) {
	if os.Getenv(EnvOTLPEndpoint) == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(ServiceName()),
		),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

func ServiceName() string {
	name := os.Getenv("OTEL_SERVICE_NAME")
	if name == "" {
		name = "precisionpercent"
	}
	return name
}

// loggerWithTrace adds trace_id and span_id from the active span in ctx.
func loggerWithTrace(logger *zap.Logger, ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return logger
	}

	return logger.With(
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
