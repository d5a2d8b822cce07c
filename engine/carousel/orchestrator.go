package carousel

import (
	"time"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/tween"
)

// applySelection lays every item out around index using the policy of the current viewport mode.
// first snaps everything into place with no tasks scheduled.
func (c *carousel) applySelection(index int, first bool) {
	if len(c.items) == 0 {
		return
	}
	if c.mode == ModeMobile {
		c.applyMobile(index, first)
	} else {
		c.applyDesktop(index, first)
	}
	if c.onSelect != nil {
		c.onSelect(index, c.items[index].Meta)
	}
}

func (c *carousel) tweenPosition(it *Item, to common.Vec3, d, delay time.Duration, onDone func()) {
	c.tweens.Schedule(it.Node, tween.GroupPosition, it.position(), to, d, delay, onDone)
}

func (c *carousel) tweenScale(it *Item, to float32, d, delay time.Duration, onDone func()) {
	c.tweens.Schedule(it.Node, tween.GroupScale, common.Vec3{it.Node.Scale()}, common.Vec3{to}, d, delay, onDone)
}

func (c *carousel) tweenOpacity(it *Item, primary, silhouette float32, d, delay time.Duration) {
	c.tweens.Schedule(it.Node, tween.GroupOpacity, it.opacities(), common.Vec3{primary, silhouette}, d, delay, nil)
}

// tweenTiltLevel brings tilt and roll back to zero.
func (c *carousel) tweenTiltLevel(it *Item, d time.Duration) {
	rx, _, rz := it.Node.Rotation()
	c.tweens.Schedule(it.Node, tween.GroupRotationTilt, common.Vec3{rx, rz}, common.Vec3{}, d, 0, nil)
}

// tweenYawFront turns the item to face the camera along the shortest arc. The current yaw is
// folded into [-Pi, Pi) first so the tween ends on exactly zero.
func (c *carousel) tweenYawFront(it *Item, d time.Duration) {
	rx, ry, rz := it.Node.Rotation()
	ry = common.WrapAngle(ry)
	it.Node.SetRotation(rx, ry, rz)
	c.tweens.Schedule(it.Node, tween.GroupRotationYaw, common.Vec3{ry}, common.Vec3{}, d, 0, nil)
}

// tweenOvershoot grows the item to the selected scale through a brief overshoot. The settle phase
// is chained from the overshoot's completion so only one scale task exists at a time.
func (c *carousel) tweenOvershoot(it *Item, d time.Duration) {
	g := c.tuning.Geometry
	settled := it.BaseScale * g.SelectScale
	peak := settled * g.OvershootScale
	grow := scaleDuration(d, g.OvershootPhaseFrac)
	settle := d - grow

	c.tweenScale(it, peak, grow, 0, func() {
		c.tweenScale(it, settled, settle, 0, nil)
	})
}

// applySpin enables idle spin at rate, or cancels it when rate is zero.
func applySpin(it *Item, rate float32) {
	if rate == 0 {
		CancelSpin(it)
		return
	}
	ResumeSpin(it, rate)
}

// offSlotOnSide returns the off slot on the same side as s.
func offSlotOnSide(s Slot) Slot {
	if s.IsLeft() {
		return SlotOffLeft
	}
	return SlotOffRight
}
