package carousel

import (
	"errors"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-carousel/engine/tween"
)

// ErrIndexOutOfRange is returned by Select for an index outside the item list.
var ErrIndexOutOfRange = errors.New("carousel: index out of range")

// SelectionListener is notified with the selected item's metadata after every layout pass.
type SelectionListener func(index int, meta Metadata)

// Viewport describes the surface the carousel is laid out for.
type Viewport struct {
	Width          int
	Height         int
	CameraDistance float32
}

type carousel struct {
	tuning   Tuning
	tweens   tween.Registry
	items    []*Item
	drag     *DragController
	onSelect SelectionListener

	viewport Viewport
	mode     ViewportMode
	layout   Layout

	selected  int
	previous  int
	direction Direction
}

// Carousel owns the selection state of a ring of items and drives their layout, transitions,
// idle spin and drag. Every method must be called from the frame loop's thread.
// With zero items every operation is a no-op.
type Carousel interface {
	// Next advances the selection by one, wrapping around, and animates the new layout.
	// Any active drag is released first.
	Next()

	// Previous retreats the selection by one, wrapping around, and animates the new layout.
	// Any active drag is released first.
	Previous()

	// Select jumps to index, animating as if navigating in the direction of the shorter way round.
	//
	// Parameters:
	//   - index: the item to select
	//
	// Returns:
	//   - error: ErrIndexOutOfRange if index is not a valid item
	Select(index int) error

	// Relayout snaps every item to its slot for the current selection with no animation.
	Relayout()

	// SetViewport resolves the layout for a new surface size and camera distance and snaps every
	// item into it. The selection is kept.
	//
	// Parameters:
	//   - vp: the new viewport
	SetViewport(vp Viewport)

	// ModeFor returns the viewport mode a surface of the given width would use.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//
	// Returns:
	//   - ViewportMode: the mode for that width
	ModeFor(width int) ViewportMode

	// PointerDown starts a drag on the selected item if the pointer is primary and no drag is active.
	//
	// Parameters:
	//   - pointerID: host pointer identifier
	//   - primary: whether the pointer is the primary pointer
	//   - x, y: pointer position in pixels
	//   - now: event time
	PointerDown(pointerID int, primary bool, x, y float32, now time.Duration)

	// PointerMove feeds pointer motion to the active drag.
	//
	// Parameters:
	//   - pointerID: host pointer identifier
	//   - x, y: pointer position in pixels
	//   - now: event time
	PointerMove(pointerID int, x, y float32, now time.Duration)

	// PointerUp releases the drag held by the pointer.
	//
	// Parameters:
	//   - pointerID: host pointer identifier
	PointerUp(pointerID int)

	// PointerCancel releases the drag held by the pointer, as the host lost it.
	//
	// Parameters:
	//   - pointerID: host pointer identifier
	PointerCancel(pointerID int)

	// Blur releases any active drag when the host window loses focus.
	Blur()

	// Update advances every transition to now and integrates idle spin over dt seconds.
	// Transition writes for a frame always land before that frame's spin step.
	//
	// Parameters:
	//   - now: current time on the tween registry clock
	//   - dt: frame delta in seconds
	Update(now time.Duration, dt float32)

	// Items returns the items in index order.
	Items() []*Item

	// Len returns the number of items.
	Len() int

	// Selected returns the selected item, or nil with no items.
	Selected() *Item

	// SelectedIndex returns the selected index.
	SelectedIndex() int

	// PreviousIndex returns the index selected before the last navigation.
	PreviousIndex() int

	// Direction returns the direction of the last navigation.
	Direction() Direction

	// Mode returns the active viewport mode.
	Mode() ViewportMode

	// Layout returns the resolved slot geometry.
	Layout() Layout

	// Dragging reports whether a drag is active.
	Dragging() bool

	// Tweens returns the registry the carousel schedules transitions on.
	Tweens() tween.Registry

	// Close releases any drag and drops every pending transition.
	Close()
}

var _ Carousel = &carousel{}

// NewCarousel creates a Carousel over the given items and performs the first layout.
// Defaults to the stock tuning, a fresh tween registry and a 1280x720 desktop viewport.
//
// Parameters:
//   - options: variadic list of CarouselBuilderOption functions
//
// Returns:
//   - Carousel: the new carousel
//   - error: error if the initial selection is out of range
func NewCarousel(options ...CarouselBuilderOption) (Carousel, error) {
	c := &carousel{
		tuning:   DefaultTuning(),
		viewport: Viewport{Width: 1280, Height: 720, CameraDistance: 3.5},
	}
	for _, opt := range options {
		opt(c)
	}

	if c.tweens == nil {
		c.tweens = tween.NewRegistry()
	}
	c.drag = NewDragController(c.tuning.Drag)

	if len(c.items) > 0 && (c.selected < 0 || c.selected >= len(c.items)) {
		return nil, fmt.Errorf("initial selection %d of %d items: %w", c.selected, len(c.items), ErrIndexOutOfRange)
	}
	if len(c.items) == 0 {
		c.selected = 0
	}
	c.previous = c.selected

	c.resolveLayout()
	c.applySelection(c.selected, true)
	return c, nil
}

func (c *carousel) resolveLayout() {
	c.mode = c.ModeFor(c.viewport.Width)
	c.layout = NewLayout(c.mode, c.viewport.Width, c.viewport.CameraDistance, c.tuning.Geometry)
}

func (c *carousel) Next() {
	c.step(DirectionNext)
}

func (c *carousel) Previous() {
	c.step(DirectionPrevious)
}

func (c *carousel) step(dir Direction) {
	n := len(c.items)
	if n == 0 {
		return
	}
	c.direction = dir
	c.drag.Cancel()
	c.previous = c.selected
	c.selected = ((c.selected+int(dir))%n + n) % n
	c.applySelection(c.selected, false)
}

func (c *carousel) Select(index int) error {
	n := len(c.items)
	if index < 0 || index >= n {
		return fmt.Errorf("select %d of %d items: %w", index, n, ErrIndexOutOfRange)
	}
	if index == c.selected {
		return nil
	}

	c.direction = DirectionNext
	if RelativeOffset(index, c.selected, n) < 0 {
		c.direction = DirectionPrevious
	}
	c.drag.Cancel()
	c.previous = c.selected
	c.selected = index
	c.applySelection(c.selected, false)
	return nil
}

func (c *carousel) Relayout() {
	c.applySelection(c.selected, true)
}

func (c *carousel) SetViewport(vp Viewport) {
	c.viewport = vp
	c.resolveLayout()
	c.applySelection(c.selected, true)
}

func (c *carousel) ModeFor(width int) ViewportMode {
	return ModeForWidth(width, c.tuning.Geometry.MobileMaxWidth)
}

func (c *carousel) PointerDown(pointerID int, primary bool, x, y float32, now time.Duration) {
	c.drag.Begin(c.Selected(), pointerID, primary, x, y, now)
}

func (c *carousel) PointerMove(pointerID int, x, y float32, now time.Duration) {
	c.drag.Move(pointerID, x, y, now)
}

func (c *carousel) PointerUp(pointerID int) {
	c.drag.End(pointerID)
}

func (c *carousel) PointerCancel(pointerID int) {
	c.drag.End(pointerID)
}

func (c *carousel) Blur() {
	c.drag.Cancel()
}

func (c *carousel) Update(now time.Duration, dt float32) {
	c.tweens.Advance(now)
	StepSpin(c.items, dt, c.tuning.Geometry.SpinSmoothing)
}

func (c *carousel) Items() []*Item {
	return c.items
}

func (c *carousel) Len() int {
	return len(c.items)
}

func (c *carousel) Selected() *Item {
	if len(c.items) == 0 {
		return nil
	}
	return c.items[c.selected]
}

func (c *carousel) SelectedIndex() int {
	return c.selected
}

func (c *carousel) PreviousIndex() int {
	return c.previous
}

func (c *carousel) Direction() Direction {
	return c.direction
}

func (c *carousel) Mode() ViewportMode {
	return c.mode
}

func (c *carousel) Layout() Layout {
	return c.layout
}

func (c *carousel) Dragging() bool {
	return c.drag.Active()
}

func (c *carousel) Tweens() tween.Registry {
	return c.tweens
}

func (c *carousel) Close() {
	c.drag.Cancel()
	c.tweens.Clear()
}
