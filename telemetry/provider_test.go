package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNew_Disabled(t *testing.T) {
	p, err := New(Config{})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.Equal(t, noop.Meter{}, p.Meter("test"))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_EnabledRequiresWriterAndInterval(t *testing.T) {
	_, err := New(Config{Enabled: true, Interval: time.Second})
	assert.Error(t, err)

	_, err = New(Config{Enabled: true, Writer: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestProvider_ExportsOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(Config{
		Enabled:        true,
		ServiceName:    "rocks-and-bullets",
		ServiceVersion: "test",
		Interval:       time.Hour,
		Writer:         &buf,
	})
	require.NoError(t, err)
	require.True(t, p.Enabled())

	counter, err := p.Meter("test").Int64Counter("rocks.test.counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	require.NoError(t, p.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "rocks.test.counter")
	assert.Contains(t, out, "rocks-and-bullets")
}
