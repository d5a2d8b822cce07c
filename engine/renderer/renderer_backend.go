package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// wgpuPresentMode maps a PresentMode onto the surface setting.
func wgpuPresentMode(mode PresentMode) wgpu.PresentMode {
	switch mode {
	case PresentModeVSync:
		return wgpu.PresentModeFifo
	default:
		return wgpu.PresentModeImmediate
	}
}

// PresentModeFor returns the mode matching a vsync setting.
//
// Parameters:
//   - vsync: whether frames wait for vertical blank
//
// Returns:
//   - PresentMode: the matching mode
func PresentModeFor(vsync bool) PresentMode {
	if vsync {
		return PresentModeVSync
	}
	return PresentModeUncapped
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
