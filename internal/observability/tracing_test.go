package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracingDisabledIsNoop(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "atelier-test"})
	require.NoError(t, err)

	_, span := Tracer.Start(context.Background(), "disabled-span")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
}

func TestInitTracingStdoutExporter(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{
		ServiceName: "atelier-test",
		Environment: "test",
		Enabled:     true,
		Exporter:    "stdout",
	})
	require.NoError(t, err)

	_, span := Tracer.Start(context.Background(), "recorded-span")
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().HasTraceID())
	span.End()

	require.NoError(t, shutdown(context.Background()))
}
