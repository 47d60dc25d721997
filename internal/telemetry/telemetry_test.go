package telemetry

import (
	"bytes"
	"context"
	"ctchen222/Tic-Tac-Toe-Term/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

func TestInitOtel_Disabled(t *testing.T) {
	tracerProvider := otel.GetTracerProvider()
	meterProvider := otel.GetMeterProvider()

	var buf bytes.Buffer
	shutdown, err := InitOtel(context.Background(), config.Telemetry{Enabled: false, StdoutTraces: true}, &buf)

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Same(t, tracerProvider, otel.GetTracerProvider())
	assert.Same(t, meterProvider, otel.GetMeterProvider())
	assert.Zero(t, buf.Len())
}

func TestNewResource(t *testing.T) {
	res, err := newResource("ttt-test")

	require.NoError(t, err)
	value, ok := res.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "ttt-test", value.AsString())
	version, ok := res.Set().Value(semconv.ServiceVersionKey)
	require.True(t, ok)
	assert.Equal(t, serviceVersion, version.AsString())
}
