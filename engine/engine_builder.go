package engine

import (
	"github.com/Carmen-Shannon/oxy-carousel/engine/camera"
	"github.com/Carmen-Shannon/oxy-carousel/engine/carousel"
	"github.com/Carmen-Shannon/oxy-carousel/engine/renderer"
	"github.com/Carmen-Shannon/oxy-carousel/engine/tween"
	"github.com/Carmen-Shannon/oxy-carousel/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose input and message loop drive the engine.
// Without one the engine only advances through explicit Frame calls.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer each frame is drawn with.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the scene camera.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithCarousel sets the carousel the engine drives.
//
// Parameters:
//   - c: the carousel
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCarousel(c carousel.Carousel) EngineBuilderOption {
	return func(e *engine) {
		e.carousel = c
	}
}

// WithClock sets the time source for frames and pointer events.
//
// Parameters:
//   - c: the clock
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(c tween.Clock) EngineBuilderOption {
	return func(e *engine) {
		e.clock = c
	}
}

// WithCameraProfiles sets the camera placement used in each viewport mode.
//
// Parameters:
//   - desktop: the placement for wide viewports
//   - mobile: the placement for narrow viewports
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCameraProfiles(desktop, mobile camera.Profile) EngineBuilderOption {
	return func(e *engine) {
		e.profiles[carousel.ModeDesktop] = desktop
		e.profiles[carousel.ModeMobile] = mobile
	}
}
