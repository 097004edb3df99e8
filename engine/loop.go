package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Loop drives a Simulation at a fixed tick and hands every frame to a Renderer
// Single-threaded: a step always completes before the frame is drawn
type Loop struct {
	sim      *Simulation
	input    InputSource
	renderer Renderer
	interval time.Duration
	log      zerolog.Logger
	metrics  *Metrics
}

// LoopOption configures a Loop
type LoopOption func(*Loop)

// WithInterval paces ticks independently of the simulation step, dt stays fixed
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) { l.interval = d }
}

// WithLogger sets the lifecycle logger, the default discards
func WithLogger(log zerolog.Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

// WithMetrics records every step on m
func WithMetrics(m *Metrics) LoopOption {
	return func(l *Loop) { l.metrics = m }
}

// NewLoop creates a loop paced at the simulation step
func NewLoop(sim *Simulation, input InputSource, renderer Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		sim:      sim,
		input:    input,
		renderer: renderer,
		interval: sim.DT(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run steps and renders until the input source requests close or ctx is done
// The iteration in progress always completes, both ways of stopping return nil
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	world := l.sim.World()
	l.log.Info().
		Dur("dt", l.sim.DT()).
		Dur("interval", l.interval).
		Int("ships", len(world.Ships)).
		Msg("loop started")

	reason := "quit"
	for running := true; running; {
		if l.input.CloseRequested() {
			break
		}

		start := time.Now()
		stats := l.sim.Step(l.input)
		if l.metrics != nil {
			l.metrics.Record(ctx, stats, time.Since(start), len(world.Bullets))
		}

		l.renderer.Render(world.Frame())

		select {
		case <-ctx.Done():
			reason = context.Cause(ctx).Error()
			running = false
		case <-ticker.C:
		}
	}

	l.log.Info().
		Uint64("ticks", world.Tick).
		Int("bullets", len(world.Bullets)).
		Str("reason", reason).
		Msg("loop stopped")
	return nil
}
