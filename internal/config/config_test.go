package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/sim"
)

func writeINI(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drift.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)

	assert.Equal(t, sim.DefaultTuning(), cfg.Tuning)
	assert.Equal(t, sim.DefaultBindings(), cfg.Keys())
	assert.Equal(t, 1, cfg.Track)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	path := writeINI(t, `
[tuning]
max_speed = 5
drift_speed = 3.5
win_score = 20
win_delay = 500ms

[window]
width = 640
height = 480
vsync = false

[game]
track = 3
vehicle_width = 16
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.Tuning.MaxSpeed)
	assert.Equal(t, 3.5, cfg.Tuning.DriftSpeed)
	assert.Equal(t, sim.DefaultAcceleration, cfg.Tuning.Acceleration)
	assert.Equal(t, 20, cfg.Tuning.WinScore)
	assert.Equal(t, 500*time.Millisecond, cfg.Tuning.WinDelay)
	assert.Equal(t, Window{Width: 640, Height: 480, VSync: false}, cfg.Window)
	assert.Equal(t, 3, cfg.Track)
	assert.Equal(t, 16.0, cfg.VehicleWidth)
	assert.Equal(t, sim.DefaultVehicleHeight, cfg.VehicleHeight)
}

func TestLoadKeyBindingsKeepFileOrder(t *testing.T) {
	path := writeINI(t, `
[keys]
drift = Space
left = J
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"drift", "left", "forward", "back", "right"}, cfg.Bindings.Keys())
	keys := cfg.Keys()
	assert.Equal(t, "space", keys.Drift)
	assert.Equal(t, "j", keys.Left)
	assert.Equal(t, "w", keys.Forward)

	lines := cfg.Controls()
	require.Len(t, lines, 5)
	assert.Equal(t, "drift:   space", lines[0])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad float", "[tuning]\nmax_speed = fast\n"},
		{"bad duration", "[tuning]\nwin_delay = soon\n"},
		{"drift cap above normal", "[tuning]\ndrift_speed = 6\n"},
		{"unknown action", "[keys]\njump = space\n"},
		{"empty binding", "[keys]\nforward =\n"},
		{"zero track", "[game]\ntrack = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeINI(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Tuning.DriftSpeed = cfg.Tuning.MaxSpeed
	assert.Error(t, cfg.Validate())
}
