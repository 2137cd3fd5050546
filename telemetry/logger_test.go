package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewLoggerToFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "louhi")

	logger.Info().Str("region", "us-east-1").Msg("scanning region")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "louhi", entry["service"])
	assert.Equal(t, "us-east-1", entry["region"])
	assert.Equal(t, "scanning region", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestOTELHookInjectsTraceIDs(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "scan")
	defer span.End()

	var buf bytes.Buffer
	bound := WithContext(ctx, NewLoggerTo(&buf, "louhi"))
	bound.Info().Msg("with span")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, span.SpanContext().TraceID().String(), entry["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), entry["span_id"])
}

func TestOTELHookNoSpanNoFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "louhi")

	logger.Info().Msg("plain")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "trace_id")
	assert.NotContains(t, entry, "span_id")
}
