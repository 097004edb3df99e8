package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/rocks-and-bullets/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics records loop instruments
// Instruments go to whichever MeterProvider is installed, the global default is a no-op
type Metrics struct {
	ticks        metric.Int64Counter
	spawned      metric.Int64Counter
	removed      metric.Int64Counter
	stepDuration metric.Float64Histogram
	liveBullets  metric.Int64ObservableGauge

	live atomic.Int64
	reg  metric.Registration
}

// NewMetrics creates the loop instruments on m
func NewMetrics(m metric.Meter) (*Metrics, error) {
	var err error
	mt := &Metrics{}

	mt.ticks, err = m.Int64Counter(
		"rocks.loop.ticks",
		metric.WithDescription("Simulation steps executed"),
	)
	if err != nil {
		return nil, err
	}

	mt.spawned, err = m.Int64Counter(
		"rocks.bullets.spawned",
		metric.WithDescription("Bullets fired"),
	)
	if err != nil {
		return nil, err
	}

	mt.removed, err = m.Int64Counter(
		"rocks.bullets.expired",
		metric.WithDescription("Bullets removed by lifetime expiry or the bullet cap"),
	)
	if err != nil {
		return nil, err
	}

	mt.stepDuration, err = m.Float64Histogram(
		"rocks.step.duration",
		metric.WithDescription("Wall time of one simulation step"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	mt.liveBullets, err = m.Int64ObservableGauge(
		"rocks.bullets.live",
		metric.WithDescription("Bullets alive after the last step"),
	)
	if err != nil {
		return nil, err
	}

	mt.reg, err = m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(mt.liveBullets, mt.live.Load())
			return nil
		},
		mt.liveBullets,
	)
	if err != nil {
		return nil, err
	}

	return mt, nil
}

// NewDefaultMetrics creates the loop instruments on the global MeterProvider
func NewDefaultMetrics() (*Metrics, error) {
	return NewMetrics(meter())
}

// Record adds one step to the instruments
func (m *Metrics) Record(ctx context.Context, stats StepStats, elapsed time.Duration, live int) {
	m.ticks.Add(ctx, 1)
	if stats.Spawned > 0 {
		m.spawned.Add(ctx, int64(stats.Spawned))
	}
	if stats.Removed > 0 {
		m.removed.Add(ctx, int64(stats.Removed))
	}
	m.stepDuration.Record(ctx, float64(elapsed)/float64(time.Millisecond))
	m.live.Store(int64(live))
}

// Close unregisters the gauge callback
func (m *Metrics) Close() error {
	if m.reg == nil {
		return nil
	}
	return m.reg.Unregister()
}
