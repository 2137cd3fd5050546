package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTELHook adds trace and span IDs to every log entry
type OTELHook struct{}

func (h OTELHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return
	}

	e.Str("trace_id", span.SpanContext().TraceID().String())
	e.Str("span_id", span.SpanContext().SpanID().String())

	if level == zerolog.ErrorLevel {
		span.SetStatus(codes.Error, msg)
	}
}

// NewLogger creates a structured logger with trace correlation
func NewLogger(service string) zerolog.Logger {
	return NewLoggerTo(os.Stdout, service)
}

// NewLoggerTo creates a structured logger writing to w
func NewLoggerTo(w io.Writer, service string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	return zerolog.New(w).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Hook(OTELHook{})
}

// NewConsoleLogger creates a human-readable logger for interactive use
func NewConsoleLogger(service string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Hook(OTELHook{})
}

// WithContext binds a context to the logger for trace propagation
func WithContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	return logger.With().Ctx(ctx).Logger()
}
