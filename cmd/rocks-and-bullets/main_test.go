package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rocks-and-bullets/config"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestRun_ExitCodesBeforeTerminal(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"version", []string{"--version"}, 0},
		{"help", []string{"--help"}, 0},
		{"unknown flag", []string{"--warp-drive"}, 2},
		{"invalid value", []string{"--tick-rate", "0"}, 2},
		{"missing config file", []string{"--config", "/nonexistent/rocks.toml"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}

func TestSetupMetrics_Disabled(t *testing.T) {
	isolate(t)
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	shutdown, metrics, err := setupMetrics(cfg)
	require.NoError(t, err)
	assert.Nil(t, metrics)
	shutdown()
}

func TestSetupMetrics_WritesIntoLogDir(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "logs")
	cfg, err := config.Load([]string{"--metrics", "--log-dir", dir})
	require.NoError(t, err)

	shutdown, metrics, err := setupMetrics(cfg)
	require.NoError(t, err)
	require.NotNil(t, metrics)
	shutdown()

	info, err := os.Stat(filepath.Join(dir, metricsFileName))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
