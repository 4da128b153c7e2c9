package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	p, err := Setup(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewResource_ServiceName(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	v, ok := newResource().Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, DefaultServiceName, v.AsString())

	t.Setenv("OTEL_SERVICE_NAME", "layout-lab")
	v, ok = newResource().Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "layout-lab", v.AsString())
}
