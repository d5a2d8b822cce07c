package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/camera"
	"github.com/Carmen-Shannon/oxy-carousel/engine/carousel"
)

const appName = "oxy-carousel"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window   WindowConfig    `koanf:"window"`
	Catalog  CatalogConfig   `koanf:"catalog"`
	Camera   CameraConfig    `koanf:"camera"`
	Renderer RendererConfig  `koanf:"renderer"`
	Carousel carousel.Tuning `koanf:"carousel"`

	Profiling bool `koanf:"profiling"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Title     string `koanf:"title"`
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
	MinWidth  int    `koanf:"min_width"`
	MinHeight int    `koanf:"min_height"`
}

// CatalogConfig locates the model catalog.
type CatalogConfig struct {
	Path    string `koanf:"path"`    // models.json, model urls resolve relative to it
	Workers int    `koanf:"workers"` // concurrent model loads
}

// CameraConfig holds one camera placement per viewport mode.
type CameraConfig struct {
	Desktop camera.Profile `koanf:"desktop"`
	Mobile  camera.Profile `koanf:"mobile"`
	Near    float32        `koanf:"near"`
	Far     float32        `koanf:"far"`
}

// RendererConfig holds presentation settings.
type RendererConfig struct {
	Background string `koanf:"background"` // hex colour, e.g. "#E3E3E3"
	VSync      bool   `koanf:"vsync"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Gallery",
			Width:     1280,
			Height:    800,
			MinWidth:  320,
			MinHeight: 480,
		},
		Catalog: CatalogConfig{
			Path:    "models.json",
			Workers: 4,
		},
		Camera: CameraConfig{
			Desktop: camera.DesktopProfile(),
			Mobile:  camera.MobileProfile(),
			Near:    0.1,
			Far:     100,
		},
		Renderer: RendererConfig{
			Background: "#E3E3E3",
			VSync:      true,
		},
		Carousel: carousel.DefaultTuning(),
	}
}

// Load reads the given TOML files over the defaults, later files winning. Missing files are skipped.
// With no paths the standard locations are searched.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = getConfigPaths()
	}

	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Catalog.Path = expandPath(cfg.Catalog.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting the application cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case strings.TrimSpace(c.Catalog.Path) == "":
		return fmt.Errorf("%w: catalog path is empty", ErrInvalidConfig)
	case c.Carousel.Geometry.MobileMaxWidth <= 0:
		return fmt.Errorf("%w: mobile_max_width must be positive", ErrInvalidConfig)
	case c.Carousel.Timing.Move <= 0 || c.Carousel.Timing.MobileMoveToSide <= 0:
		return fmt.Errorf("%w: move durations must be positive", ErrInvalidConfig)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera planes near=%v far=%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	}
	if _, err := c.Background(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Background returns the parsed clear colour.
func (c *Config) Background() (common.Color, error) {
	return common.ParseHexColor(c.Renderer.Background)
}

// GetWorkers returns the loader concurrency with defaults applied.
func (c *Config) GetWorkers() int {
	if c.Catalog.Workers <= 0 {
		return 1
	}
	return c.Catalog.Workers
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/oxy-carousel/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
