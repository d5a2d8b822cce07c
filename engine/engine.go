package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/camera"
	"github.com/Carmen-Shannon/oxy-carousel/engine/carousel"
	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
	"github.com/Carmen-Shannon/oxy-carousel/engine/profiler"
	"github.com/Carmen-Shannon/oxy-carousel/engine/renderer"
	"github.com/Carmen-Shannon/oxy-carousel/engine/tween"
	"github.com/Carmen-Shannon/oxy-carousel/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoCarousel is returned by NewEngine when no carousel was supplied.
var ErrNoCarousel = errors.New("engine needs a carousel")

// maxFrameDelta caps the step handed to the carousel so a stalled frame cannot fling a spin.
const maxFrameDelta float32 = 0.05

// engine implements the Engine interface.
// Everything runs on the window's thread: input callbacks and Frame never race.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	camera   camera.Camera
	carousel carousel.Carousel
	clock    tween.Clock

	profiles map[carousel.ViewportMode]camera.Profile

	profiler         *profiler.Profiler
	profilingEnabled bool

	lastFrame  time.Duration
	framed     bool
	nodes      []game_object.GameObject
	lastErr    string
	frameCount uint64

	quitOnce sync.Once
	quit     bool
}

// Engine drives the carousel: it routes window input to it, advances it once per frame and hands
// the resulting scene to the renderer.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, nil when running headless
	Window() window.Window

	// Carousel returns the driven carousel.
	Carousel() carousel.Carousel

	// Camera returns the scene camera.
	Camera() camera.Camera

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ToggleProfiler flips profiling output.
	ToggleProfiler()

	// Frame runs one frame: the carousel is advanced by the time since the previous frame, clamped
	// to [0, 0.05] seconds, and the scene is drawn.
	//
	// Parameters:
	//   - now: the monotonic time of this frame
	Frame(now time.Duration)

	// Resize applies a new framebuffer size. The camera takes the profile of the viewport mode the
	// width falls into, then the carousel re-lays out against the new camera distance.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// KeyDown handles a key press.
	//
	// Parameters:
	//   - keyCode: the key code (see common key codes)
	KeyDown(keyCode uint32)

	// Run starts the main loop (blocks until the window closes), then releases the renderer.
	Run()

	// Quit drops every pending transition and asks the window to close.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Done reports whether Quit has been called.
	Done() bool
}

var _ Engine = &engine{}

// NewEngine creates a new Engine and wires the window callbacks to it.
// A carousel is required; a missing camera gets the desktop profile and a missing clock reads
// the carousel's tween registry so frames and tweens share one timeline.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrNoCarousel when WithCarousel was not given
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		profiles: map[carousel.ViewportMode]camera.Profile{
			carousel.ModeDesktop: camera.DesktopProfile(),
			carousel.ModeMobile:  camera.MobileProfile(),
		},
		profiler: profiler.NewProfiler(time.Second),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.carousel == nil {
		return nil, ErrNoCarousel
	}
	if e.clock == nil {
		e.clock = e.carousel.Tweens()
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}

	if e.window != nil {
		e.bindWindow()
		e.Resize(e.window.Width(), e.window.Height())
	}

	return e, nil
}

func (e *engine) bindWindow() {
	w := e.window
	w.SetResizeCallback(e.Resize)
	w.SetKeyDownCallback(e.KeyDown)
	w.SetPointerDownCallback(func(pointerID int, primary bool, x, y float32) {
		e.carousel.PointerDown(pointerID, primary, x, y, e.clock.Now())
	})
	w.SetPointerMoveCallback(func(pointerID int, x, y float32) {
		e.carousel.PointerMove(pointerID, x, y, e.clock.Now())
	})
	w.SetPointerUpCallback(e.carousel.PointerUp)
	w.SetFocusCallback(func(focused bool) {
		if !focused {
			e.carousel.Blur()
		}
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Carousel() carousel.Carousel {
	return e.carousel
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) EnableProfiler() {
	if !e.profilingEnabled {
		e.profiler.Reset()
	}
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) ToggleProfiler() {
	if e.profilingEnabled {
		e.DisableProfiler()
		log.Printf("[Engine] profiler off")
		return
	}
	e.EnableProfiler()
	log.Printf("[Engine] profiler on")
}

func (e *engine) Frame(now time.Duration) {
	if e.quit {
		return
	}

	var dt float32
	if e.framed {
		dt = frameDelta(now - e.lastFrame)
	}
	e.lastFrame = now
	e.framed = true
	e.frameCount++

	e.carousel.Update(now, dt)

	var stats renderer.Stats
	if e.renderer != nil {
		e.nodes = e.nodes[:0]
		for _, it := range e.carousel.Items() {
			e.nodes = append(e.nodes, it.Node)
		}
		if err := e.renderer.Render(e.camera, e.nodes); err != nil {
			// Surface loss repeats every frame until the next resize, log it once.
			if msg := err.Error(); msg != e.lastErr {
				log.Printf("[Engine] frame %d: %v", e.frameCount, err)
				e.lastErr = msg
			}
		} else {
			e.lastErr = ""
		}
		stats = e.renderer.Stats()
	}

	if e.profilingEnabled {
		e.profiler.Tick(time.Now(), profiler.Counters{
			Tweens:    e.carousel.Tweens().Len(),
			Instances: stats.Instances,
			Uploaded:  stats.UploadedBytes,
		})
	}
}

// frameDelta converts the time between frames to a step in seconds, clamped to [0, maxFrameDelta].
func frameDelta(elapsed time.Duration) float32 {
	return mgl32.Clamp(float32(elapsed.Seconds()), 0, maxFrameDelta)
}

func (e *engine) Resize(width, height int) {
	// Minimised windows report a zero framebuffer.
	if width <= 0 || height <= 0 {
		return
	}

	mode := e.carousel.ModeFor(width)
	e.camera.ApplyProfile(e.profiles[mode])
	e.camera.SetAspect(float32(width) / float32(height))
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	e.carousel.SetViewport(carousel.Viewport{
		Width:          width,
		Height:         height,
		CameraDistance: e.camera.Distance(),
	})
}

func (e *engine) KeyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyRight, common.KeyD:
		e.carousel.Next()
	case common.KeyLeft, common.KeyA:
		e.carousel.Previous()
	case common.KeyP:
		e.ToggleProfiler()
	case common.KeyEsc:
		e.Quit()
	}
}

func (e *engine) Run() {
	if e.window == nil {
		return
	}
	e.window.SetUpdateCallback(func() {
		e.Frame(e.clock.Now())
	})
	e.window.ProcessMessages()

	e.Quit()
	if e.renderer != nil {
		e.renderer.Release()
	}
	e.window.Close()
}

// Quit clears the carousel's transitions and requests the window close.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.quit = true
		e.carousel.Close()
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

func (e *engine) Done() bool {
	return e.quit
}
