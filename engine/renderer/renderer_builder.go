package renderer

import "github.com/Carmen-Shannon/oxy-carousel/common"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithBackground sets the clear colour.
//
// Parameters:
//   - c: the background colour
//
// Returns:
//   - RendererBuilderOption: a function that applies the background to a renderer
func WithBackground(c common.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.background = c
	}
}

// WithDrawHook sets the function that records mesh draws into the main pass.
//
// Parameters:
//   - hook: the draw hook
//
// Returns:
//   - RendererBuilderOption: a function that applies the draw hook to a renderer
func WithDrawHook(hook DrawHook) RendererBuilderOption {
	return func(r *renderer) {
		r.drawHook = hook
	}
}

// WithHookRelease sets a function that frees the draw hook's GPU objects. Release calls it
// before the device goes away.
//
// Parameters:
//   - release: frees whatever the draw hook created on the device
//
// Returns:
//   - RendererBuilderOption: a function that applies the release callback to a renderer
func WithHookRelease(release func()) RendererBuilderOption {
	return func(r *renderer) {
		r.hookRelease = release
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
