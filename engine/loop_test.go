package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/lixenwraith/rocks-and-bullets/core"
	"github.com/lixenwraith/rocks-and-bullets/input"
)

type countingRenderer struct {
	frames []Frame
}

func (r *countingRenderer) Render(f Frame) { r.frames = append(r.frames, f) }

func TestLoop_StopsWhenInputCloses(t *testing.T) {
	sim := testSimulation(t, nil)
	src := &fakeInput{closeAfter: 3}
	r := &countingRenderer{}

	var buf bytes.Buffer
	loop := NewLoop(sim, src, r, WithInterval(time.Millisecond), WithLogger(zerolog.New(&buf)))
	require.NoError(t, loop.Run(context.Background()))

	require.Len(t, r.frames, 3)
	for i, f := range r.frames {
		assert.Equal(t, uint64(i+1), f.Tick, "frame drawn after its step")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var stopped map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &stopped))
	assert.Equal(t, "loop stopped", stopped["message"])
	assert.Equal(t, "quit", stopped["reason"])
	assert.EqualValues(t, 3, stopped["ticks"])
}

func TestLoop_StopsOnContextCancel(t *testing.T) {
	sim := testSimulation(t, nil)
	r := &countingRenderer{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	loop := NewLoop(sim, &fakeInput{}, r, WithInterval(time.Hour), WithLogger(zerolog.New(&buf)))
	require.NoError(t, loop.Run(ctx))

	assert.Len(t, r.frames, 1, "the iteration in progress completes")
	assert.Contains(t, buf.String(), context.Canceled.Error())
}

func TestLoop_AppliesInputEachTick(t *testing.T) {
	sim := testSimulation(t, nil)
	src := &fakeInput{
		closeAfter: 10,
		pressed:    map[input.Key]bool{{Player: core.Player1, Action: input.ActionTurnLeft}: true},
	}

	require.NoError(t, NewLoop(sim, src, &countingRenderer{}, WithInterval(time.Millisecond)).Run(context.Background()))

	assert.InDelta(t, 15, sim.World().Ships[0].RotationZ, 1e-5)
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func sumValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	m, ok := findMetric(rm, name)
	require.True(t, ok, "metric %s missing", name)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is %T", name, m.Data)
	require.Len(t, sum.DataPoints, 1)
	return sum.DataPoints[0].Value
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.Record(ctx, StepStats{Spawned: 2}, time.Millisecond, 2)
	m.Record(ctx, StepStats{Removed: 1}, 2*time.Millisecond, 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	assert.EqualValues(t, 2, sumValue(t, rm, "rocks.loop.ticks"))
	assert.EqualValues(t, 2, sumValue(t, rm, "rocks.bullets.spawned"))
	assert.EqualValues(t, 1, sumValue(t, rm, "rocks.bullets.expired"))

	g, ok := findMetric(rm, "rocks.bullets.live")
	require.True(t, ok)
	gauge, ok := g.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.EqualValues(t, 1, gauge.DataPoints[0].Value)

	h, ok := findMetric(rm, "rocks.step.duration")
	require.True(t, ok)
	hist, ok := h.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.EqualValues(t, 2, hist.DataPoints[0].Count)
	assert.InDelta(t, 3.0, hist.DataPoints[0].Sum, 1e-9)

	require.NoError(t, m.Close())
}

func TestLoop_RecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	sim := testSimulation(t, nil)
	loop := NewLoop(sim, &fakeInput{closeAfter: 4}, &countingRenderer{}, WithInterval(time.Millisecond), WithMetrics(m))
	require.NoError(t, loop.Run(context.Background()))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	assert.EqualValues(t, 4, sumValue(t, rm, "rocks.loop.ticks"))
}
