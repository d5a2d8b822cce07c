package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 720*time.Millisecond, cfg.Carousel.Timing.Move)
	assert.Equal(t, 768, cfg.Carousel.Geometry.MobileMaxWidth)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
profiling = true

[window]
title = "Heroes"
width = 1600

[catalog]
path = "assets/models.json"
workers = 8

[camera.mobile]
position = [0.0, -0.1, 4.5]

[renderer]
background = "#101010"

[carousel.timing]
move = "500ms"

[carousel.geometry]
silhouette_opacity = 0.5

[carousel.drag]
reverse_tilt = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Profiling)
	assert.Equal(t, "Heroes", cfg.Window.Title)
	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, "assets/models.json", cfg.Catalog.Path)
	assert.Equal(t, 8, cfg.GetWorkers())

	assert.Equal(t, [3]float32{0, -0.1, 4.5}, cfg.Camera.Mobile.Position)
	assert.Equal(t, float32(45), cfg.Camera.Mobile.FovDegrees)
	assert.Equal(t, float32(3.5), cfg.Camera.Desktop.Position[2])

	assert.Equal(t, 500*time.Millisecond, cfg.Carousel.Timing.Move)
	assert.Equal(t, 560*time.Millisecond, cfg.Carousel.Timing.Crossfade)
	assert.Equal(t, float32(0.5), cfg.Carousel.Geometry.SilhouetteOpacity)
	assert.Equal(t, float32(1.25), cfg.Carousel.Geometry.SelectScale)
	assert.False(t, cfg.Carousel.Drag.ReverseTilt)
	assert.Equal(t, float32(0.008), cfg.Carousel.Drag.YawSensitivity)

	bg, err := cfg.Background()
	require.NoError(t, err)
	assert.InDelta(t, 0.00518, bg.R, 1e-4) // linear value of sRGB 0x10
}

func TestLoadLaterFilesWin(t *testing.T) {
	first := writeConfig(t, "[window]\ntitle = \"first\"\nwidth = 900\n")
	second := writeConfig(t, "[window]\ntitle = \"second\"\n")

	cfg, err := Load(first, second)
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Window.Title)
	assert.Equal(t, 900, cfg.Window.Width)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad background", body: "[renderer]\nbackground = \"chartreuse-ish\"\n"},
		{name: "zero width", body: "[window]\nwidth = 0\n"},
		{name: "empty catalog", body: "[catalog]\npath = \"  \"\n"},
		{name: "negative move", body: "[carousel.timing]\nmove = \"-1s\"\n"},
		{name: "inverted planes", body: "[camera]\nnear = 10.0\nfar = 1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[window\nwidth = "))
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde expands to home", input: "~/gallery/models.json", expected: filepath.Join(home, "gallery", "models.json")},
		{name: "relative path unchanged", input: "models.json", expected: "models.json"},
		{name: "empty string unchanged", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetWorkersDefault(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Workers = 0
	assert.Equal(t, 1, cfg.GetWorkers())
}
