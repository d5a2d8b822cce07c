package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// MousePointerID is the pointer id the mouse reports under. A mouse is a single pointer whatever
// button is held; only the left button makes it primary.
const MousePointerID = 0

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common key codes)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetPointerDownCallback sets the callback for button presses.
	//
	// Parameters:
	//   - callback: function receiving the pointer id, whether the press is primary, and the cursor position
	SetPointerDownCallback(callback func(pointerID int, primary bool, x, y float32))

	// SetPointerMoveCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the pointer id and cursor position
	SetPointerMoveCallback(callback func(pointerID int, x, y float32))

	// SetPointerUpCallback sets the callback for button releases.
	//
	// Parameters:
	//   - callback: function receiving the pointer id
	SetPointerUpCallback(callback func(pointerID int))

	// SetFocusCallback sets the callback for focus changes.
	//
	// Parameters:
	//   - callback: function receiving true when focus is gained and false when it is lost
	SetFocusCallback(callback func(focused bool))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to stop after the current iteration.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate      func()
	onResize      func(width, height int)
	onKeyDown     func(keyCode uint32)
	onPointerDown func(pointerID int, primary bool, x, y float32)
	onPointerMove func(pointerID int, x, y float32)
	onPointerUp   func(pointerID int)
	onFocus       func(focused bool)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order. Panics if the platform window
// cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Gallery",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 480,
		width:     1280,
		height:    800,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetPointerDownCallback(callback func(pointerID int, primary bool, x, y float32)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SetPointerMoveCallback(callback func(pointerID int, x, y float32)) {
	w.onPointerMove = callback
}

func (w *engineWindow) SetPointerUpCallback(callback func(pointerID int)) {
	w.onPointerUp = callback
}

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) {
	w.onFocus = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
