package carousel

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// minDragElapsed floors the time between pointer samples for the velocity estimate.
const minDragElapsed = 0.001

// DragController turns primary-pointer motion into yaw and tilt on one item and hands the
// last measured angular velocity back to the idle spin on release.
type DragController struct {
	tuning DragTuning

	active    bool
	pointerID int
	item      *Item
	lastX     float32
	lastY     float32
	lastTime  time.Duration
	velocity  float32
}

// NewDragController creates an idle DragController.
//
// Parameters:
//   - tuning: sensitivities and axis reversal
//
// Returns:
//   - *DragController: the controller
func NewDragController(tuning DragTuning) *DragController {
	return &DragController{tuning: tuning}
}

// Active reports whether a drag is in progress.
func (d *DragController) Active() bool {
	return d.active
}

// Velocity returns the last measured yaw velocity in radians per second.
func (d *DragController) Velocity() float32 {
	return d.velocity
}

// Begin starts a drag on item. Non-primary pointers and pointers arriving while a drag is
// already active are ignored.
//
// Parameters:
//   - item: the selected item
//   - pointerID: host pointer identifier
//   - primary: whether the pointer is the host's primary pointer
//   - x, y: pointer position in pixels
//   - now: event time
//
// Returns:
//   - bool: true if the drag started
func (d *DragController) Begin(item *Item, pointerID int, primary bool, x, y float32, now time.Duration) bool {
	if item == nil || !primary || d.active {
		return false
	}
	CancelSpin(item)

	d.active = true
	d.pointerID = pointerID
	d.item = item
	d.lastX, d.lastY = x, y
	d.lastTime = now
	d.velocity = 0
	return true
}

// Move applies pointer motion to the dragged item: horizontal motion turns yaw, vertical motion
// tilts around X within the tilt limit, roll is pinned to zero.
//
// Parameters:
//   - pointerID: host pointer identifier
//   - x, y: pointer position in pixels
//   - now: event time
func (d *DragController) Move(pointerID int, x, y float32, now time.Duration) {
	if !d.active || pointerID != d.pointerID {
		return
	}

	dt := max(minDragElapsed, float32((now - d.lastTime).Seconds()))
	dx := x - d.lastX
	dy := y - d.lastY
	d.lastX, d.lastY = x, y
	d.lastTime = now

	if d.tuning.ReverseYaw {
		dx = -dx
	}
	if !d.tuning.ReverseTilt {
		dy = -dy
	}

	yawDelta := dx * d.tuning.YawSensitivity
	rx, ry, _ := d.item.Node.Rotation()
	tilt := mgl32.Clamp(rx+dy*d.tuning.TiltSensitivity, -d.tuning.TiltMax, d.tuning.TiltMax)
	d.item.Node.SetRotation(tilt, ry+yawDelta, 0)

	d.velocity = yawDelta / dt
}

// End releases the drag held by pointerID, seeding the item's spin with the measured velocity
// so it coasts back to rest.
//
// Parameters:
//   - pointerID: host pointer identifier
func (d *DragController) End(pointerID int) {
	if !d.active || pointerID != d.pointerID {
		return
	}
	d.release()
}

// Cancel releases any active drag regardless of pointer, as on focus loss or navigation.
func (d *DragController) Cancel() {
	if !d.active {
		return
	}
	d.release()
}

func (d *DragController) release() {
	d.item.Frozen = false
	d.item.SpinVelocity = d.velocity
	d.item.SpinTarget = 0

	d.active = false
	d.item = nil
}
