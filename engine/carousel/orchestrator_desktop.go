package carousel

import (
	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/tween"
)

// desktopTarget is the resolved destination of one item for a desktop layout pass.
type desktopTarget struct {
	slot    Slot
	exiting bool
	pos     common.Vec3
	scale   float32
	spin    float32
}

func (c *carousel) desktopTargetFor(it *Item, index int) desktopTarget {
	g := c.tuning.Geometry
	nominal := SlotFor(RelativeOffset(it.Index, index, len(c.items)), c.layout.ShowSides)
	slot, exiting := ResolveExit(it.Slot, nominal, c.direction)

	t := desktopTarget{
		slot:    slot,
		exiting: exiting,
		pos:     c.layout.Position(slot),
		scale:   it.BaseScale * g.OtherScale,
	}
	switch {
	case slot == SlotCenter:
		t.scale = it.BaseScale * g.SelectScale
	case slot.IsSide():
		t.spin = g.BaseSpin * g.SideSpinFactor
	}
	return t
}

// applyDesktop runs the desktop policy: up to three items on stage, departing items keep
// their silhouette until they have slid off.
func (c *carousel) applyDesktop(index int, first bool) {
	g, tm := c.tuning.Geometry, c.tuning.Timing

	for _, it := range c.items {
		prev := it.Slot
		t := c.desktopTargetFor(it, index)

		if first {
			c.snapDesktop(it, t)
			continue
		}

		c.tweens.Cancel(it.Node, tween.GroupOpacity, tween.GroupRotationTilt, tween.GroupRotationYaw)
		if it.Exiting {
			// a previous exit is still holding; finish it now
			it.Exiting = false
			it.Node.SetVisible(false)
			it.Node.SetOpacities(0, 0)
		}
		c.tweens.Cancel(it.Node, tween.GroupHold)

		animate := true
		switch {
		case t.slot == SlotCenter:
			it.Node.SetVisible(true)
			c.tweenOpacity(it, 1, 0, tm.Crossfade, tm.CrossfadeDelay)
			realign := scaleDuration(tm.Move, tm.CenterRealignFrac)
			c.tweenTiltLevel(it, realign)
			c.tweenYawFront(it, realign)

		case t.slot.IsSide():
			it.Node.SetVisible(true)
			if prev.IsOff() {
				// enter from the matching off slot already silhouetted
				c.tweens.Cancel(it.Node)
				it.snapTransform(c.layout.Position(offSlotOnSide(t.slot)), it.BaseScale*g.OtherScale)
				it.Node.SetOpacities(1, g.SilhouetteOpacity)
			} else {
				c.tweenOpacity(it, 1, g.SilhouetteOpacity, tm.Crossfade, tm.CrossfadeDelay)
			}
			c.tweenTiltLevel(it, tm.RealignDesktop)

		case t.exiting:
			c.exitWithSilhouette(it)
			c.tweenTiltLevel(it, scaleDuration(tm.RealignDesktop, tm.ExitRealignFrac))

		default:
			it.Node.SetVisible(false)
			it.Node.SetOpacities(0, 0)
			c.tweens.Cancel(it.Node)
			it.snapTransform(t.pos, t.scale)
			c.tweenTiltLevel(it, scaleDuration(tm.RealignDesktop, tm.ParkedRealignFrac))
			animate = false
		}

		if animate {
			c.tweenPosition(it, t.pos, tm.Move, 0, nil)
			c.tweens.Cancel(it.Node, tween.GroupScale)
			if t.slot == SlotCenter {
				c.tweenOvershoot(it, tm.Move)
			} else {
				c.tweenScale(it, t.scale, tm.Move, 0, nil)
			}
		}

		applySpin(it, t.spin)
		it.Slot = t.slot
	}
}

// exitWithSilhouette keeps a departing item fully visible with its silhouette while it slides
// off, then hides it once the hold runs out.
func (c *carousel) exitWithSilhouette(it *Item) {
	g, tm := c.tuning.Geometry, c.tuning.Timing

	it.Exiting = true
	it.Node.SetVisible(true)
	it.Node.SetOpacities(1, g.SilhouetteOpacity)
	c.tweens.Hold(it.Node, tm.ExitHold(), func() {
		it.Exiting = false
		it.Node.SetVisible(false)
		it.Node.SetOpacities(0, 0)
	})
}

// snapDesktop places an item at its target with no tasks.
func (c *carousel) snapDesktop(it *Item, t desktopTarget) {
	g := c.tuning.Geometry

	c.tweens.Cancel(it.Node)
	it.Exiting = false
	it.snapTransform(t.pos, t.scale)

	_, ry, _ := it.Node.Rotation()
	switch {
	case t.slot == SlotCenter:
		it.Node.SetVisible(true)
		it.Node.SetOpacities(1, 0)
		it.Node.SetRotation(0, 0, 0)
	case t.slot.IsSide():
		it.Node.SetVisible(true)
		it.Node.SetOpacities(1, g.SilhouetteOpacity)
		it.Node.SetRotation(0, ry, 0)
	default:
		it.Node.SetVisible(false)
		it.Node.SetOpacities(0, 0)
		it.Node.SetRotation(0, ry, 0)
	}

	applySpin(it, t.spin)
	it.Slot = t.slot
}
