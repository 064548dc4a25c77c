package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/shlibdeps/internal/adapters/telemetry"
	"go.trai.ch/zerr"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func TestOTelTracer_Start(t *testing.T) {
	sr := setupRecorder(t)

	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "walk")
	span.SetAttribute("architecture", "amd64")
	span.SetAttribute("libraries", 7)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "walk", spans[0].Name())

	attrs := spans[0].Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "architecture", string(attrs[0].Key))
	assert.Equal(t, "amd64", attrs[0].Value.AsString())
	assert.Equal(t, int64(7), attrs[1].Value.AsInt64())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := setupRecorder(t)

	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "resolve")
	span.RecordError(zerr.New("no package provides path"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "no package provides path", spans[0].Status().Description)

	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "exception", events[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "anything")
	assert.NotNil(t, ctx)

	span.SetAttribute("key", "value")
	span.RecordError(zerr.New("ignored"))
	span.End()
}
