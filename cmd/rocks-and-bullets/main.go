package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/rocks-and-bullets/config"
	"github.com/lixenwraith/rocks-and-bullets/core"
	"github.com/lixenwraith/rocks-and-bullets/engine"
	"github.com/lixenwraith/rocks-and-bullets/input"
	"github.com/lixenwraith/rocks-and-bullets/render"
	"github.com/lixenwraith/rocks-and-bullets/telemetry"
)

const (
	appName     = "Rocks and Bullets"
	serviceName = "rocks-and-bullets"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		return 2
	}
	if cfg.ShowVersion {
		fmt.Printf("%s %s\n", appName, version)
		return 0
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: invalid configuration:\n%v\n", serviceName, err)
		return 2
	}

	logFile, logger, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	logger.Info().
		Str("name", appName).
		Str("version", version).
		Strs("args", args).
		Str("config", cfg.Source).
		Msg("PROGRAM START")

	code := 0
	if err := play(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("run failed")
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		code = 1
	}

	logger.Info().Int("exit_code", code).Msg("PROGRAM END")
	return code
}

// play owns the terminal for the duration of one game
func play(cfg *config.Config, logger zerolog.Logger) error {
	sim, err := cfg.NewSimulation()
	if err != nil {
		return err
	}
	arena := sim.World().Arena
	logger.Info().
		Float64("min_x", arena.OriginX).
		Float64("min_y", arena.OriginY).
		Float64("max_x", arena.MaxX()).
		Float64("max_y", arena.MaxY()).
		Dur("dt", sim.DT()).
		Msg("arena ready")

	bindings, err := cfg.Bindings()
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	shutdownMetrics, metrics, err := setupMetrics(cfg)
	if err != nil {
		return err
	}
	defer shutdownMetrics()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	mode, err := render.ParseColorMode(cfg.Render.Color, screen.Colors())
	if err != nil {
		finiScreen(screen)
		return err
	}
	renderer := render.NewTerminalRenderer(screen, mode)
	screen.SetStyle(renderer.BaseStyle())
	screen.HideCursor()

	latch := input.NewKeyLatch(core.NewMonotonicTimeProvider(), cfg.Input.Hold)
	source := input.NewTerminalSource(screen, bindings, latch,
		input.WithResizeHandler(screen.Sync),
		input.WithTerminalLogger(logger),
	)
	source.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []engine.LoopOption{engine.WithLogger(logger)}
	if metrics != nil {
		opts = append(opts, engine.WithMetrics(metrics))
	}
	runErr := engine.NewLoop(sim, source, renderer, opts...).Run(ctx)

	finiScreen(screen)
	select {
	case <-source.Done():
	case <-time.After(time.Second):
		logger.Warn().Msg("input pump did not stop")
	}
	return runErr
}

func finiScreen(s tcell.Screen) {
	core.SetCrashScreen(nil)
	s.Fini()
}

// setupMetrics installs the exporting MeterProvider when enabled
// The returned shutdown func is always safe to call
func setupMetrics(cfg *config.Config) (func(), *engine.Metrics, error) {
	if !cfg.Metrics.Enabled {
		return func() {}, nil, nil
	}

	f, err := openLogFile(cfg.Log.Dir, metricsFileName)
	if err != nil {
		return nil, nil, err
	}

	provider, err := telemetry.New(telemetry.Config{
		Enabled:        true,
		ServiceName:    serviceName,
		ServiceVersion: version,
		Interval:       cfg.Metrics.Interval,
		Writer:         f,
	})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	provider.Install()

	metrics, err := engine.NewDefaultMetrics()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("metrics: %w", err)
	}

	return func() {
		_ = metrics.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = provider.Shutdown(ctx)
		f.Close()
	}, metrics, nil
}
