package renderer

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/camera"
	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
)

// Surface is what the renderer needs from a window.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// FrameData is handed to the draw hook inside the open render pass.
type FrameData struct {
	// Instances holds one record per visible node, in item order.
	Instances []GPUInstance
	// ModelRefs holds the model reference of each instance.
	ModelRefs []string
	// InstanceBuffer is a storage buffer holding Instances.
	InstanceBuffer *wgpu.Buffer
	// CameraBuffer is a uniform buffer holding the camera.GPUCameraUniform.
	CameraBuffer *wgpu.Buffer
	// Queue is the device queue, for hooks that upload their own per-frame data.
	Queue *wgpu.Queue
	// Format is the colour format of the pass target.
	Format wgpu.TextureFormat
}

// DrawHook records mesh draws into the main pass. Pipelines, meshes and materials belong to the
// hook; the renderer only owns the frame, the clear and the shared buffers.
type DrawHook func(device *wgpu.Device, pass *wgpu.RenderPassEncoder, frame FrameData)

// Stats describes the last rendered frame.
type Stats struct {
	Instances     int
	UploadedBytes uint64
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	drawHook    DrawHook
	hookRelease func()
	background  common.Color

	instanceBuffer   *wgpu.Buffer
	instanceCapacity uint64
	cameraBuffer     *wgpu.Buffer

	instances []GPUInstance
	refs      []string
	stats     Stats

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
}

// Renderer draws the carousel frame: it clears to the background, uploads per-item instance data
// and the camera uniform, and runs the draw hook inside the main pass.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the present mode. A call to Resize is required for it to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetBackground sets the clear colour.
	//
	// Parameters:
	//   - c: the new background
	SetBackground(c common.Color)

	// Render draws one frame of the given nodes as seen from cam.
	//
	// Parameters:
	//   - cam: the camera supplying the uniform
	//   - nodes: the scene nodes; invisible ones are skipped
	//
	// Returns:
	//   - error: error if the frame could not be acquired or buffers could not be created
	Render(cam camera.Camera, nodes []game_object.GameObject) error

	// Stats returns figures from the last rendered frame.
	Stats() Stats

	// Release frees GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer on the window's surface.
//
// Parameters:
//   - backendType: the type of rendering backend to use
//   - surface: the window providing the surface descriptor and size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: error if no adapter or device is available
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		background:  common.Color{R: 0.768, G: 0.768, B: 0.768, A: 1},
		presentMode: PresentModeVSync,
	}

	// Options first so config flags are available before the backend requests an adapter.
	for _, opt := range options {
		opt(r)
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter)
	}
	if err != nil {
		return nil, fmt.Errorf("create renderer backend: %w", err)
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.SetClearColor(r.background)
	r.backend.ConfigureSurface(surface.Width(), surface.Height())
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetBackground(c common.Color) {
	r.mu.Lock()
	r.background = c
	r.mu.Unlock()
	r.backend.SetClearColor(c)
}

func (r *renderer) Render(cam camera.Camera, nodes []game_object.GameObject) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances, r.refs = BuildInstances(nodes, r.instances, r.refs)
	if err := r.uploadLocked(cam); err != nil {
		return err
	}

	pass, err := r.backend.BeginFrame()
	if err != nil {
		return err
	}
	if r.drawHook != nil && len(r.instances) > 0 {
		r.drawHook(r.backend.Device(), pass, FrameData{
			Instances:      r.instances,
			ModelRefs:      r.refs,
			InstanceBuffer: r.instanceBuffer,
			CameraBuffer:   r.cameraBuffer,
			Queue:          r.backend.Queue(),
			Format:         r.backend.SurfaceFormat(),
		})
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

// uploadLocked writes the camera uniform and instance records, growing the instance buffer when
// the visible count outgrows it. Caller must hold the mutex.
func (r *renderer) uploadLocked(cam camera.Camera) error {
	uniform := cam.Uniform()
	if r.cameraBuffer == nil {
		buf, err := r.backend.CreateBuffer("Camera Uniform", uint64(uniform.Size()), wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
		if err != nil {
			return fmt.Errorf("create camera buffer: %w", err)
		}
		r.cameraBuffer = buf
	}
	camBytes := uniform.Marshal()
	r.backend.WriteBuffer(r.cameraBuffer, camBytes)

	needed := bufferCapacity(len(r.instances))
	if r.instanceBuffer == nil || needed > r.instanceCapacity {
		if r.instanceBuffer != nil {
			r.instanceBuffer.Release()
		}
		buf, err := r.backend.CreateBuffer("Instance Storage", needed, wgpu.BufferUsageStorage|wgpu.BufferUsageCopyDst)
		if err != nil {
			r.instanceBuffer = nil
			r.instanceCapacity = 0
			return fmt.Errorf("create instance buffer: %w", err)
		}
		r.instanceBuffer = buf
		r.instanceCapacity = needed
	}

	var instBytes []byte
	if len(r.instances) > 0 {
		instBytes = common.SliceToBytes(r.instances)
		r.backend.WriteBuffer(r.instanceBuffer, instBytes)
	}

	r.stats = Stats{
		Instances:     len(r.instances),
		UploadedBytes: uint64(len(camBytes) + len(instBytes)),
	}
	return nil
}

func (r *renderer) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hookRelease != nil {
		r.hookRelease()
		r.hookRelease = nil
	}

	if r.instanceBuffer != nil {
		r.instanceBuffer.Release()
		r.instanceBuffer = nil
	}
	if r.cameraBuffer != nil {
		r.cameraBuffer.Release()
		r.cameraBuffer = nil
	}
	r.backend.Release()
}
