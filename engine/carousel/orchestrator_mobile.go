package carousel

// applyMobile runs the mobile policy: a single item on stage, the outgoing item slides out to the
// side matching the navigation direction while the incoming one slides in from the other side.
// Silhouettes are never shown.
func (c *carousel) applyMobile(index int, first bool) {
	g, tm := c.tuning.Geometry, c.tuning.Timing
	n := len(c.items)

	for _, it := range c.items {
		c.tweens.Cancel(it.Node)
		it.Exiting = false
		p, _ := it.Node.Opacities()
		it.Node.SetOpacities(p, 0)
	}

	out := c.previous
	if first || out < 0 || out >= n || out == index {
		c.snapMobile(index)
		return
	}

	outSide, inSide := SlotSideRight, SlotSideLeft
	if c.direction < 0 {
		outSide, inSide = SlotSideLeft, SlotSideRight
	}
	park := offSlotOnSide(outSide)

	for _, it := range c.items {
		if it.Index == out || it.Index == index {
			continue
		}
		slot := SlotFor(RelativeOffset(it.Index, index, n), false)
		it.Node.SetVisible(false)
		it.Node.SetOpacities(0, 0)
		it.snapTransform(c.layout.Position(slot), it.BaseScale*g.OtherScale)
		c.tweenTiltLevel(it, scaleDuration(tm.RealignMobile, tm.MobileParkedFrac))
		CancelSpin(it)
		it.Slot = slot
	}

	outgoing := c.items[out]
	outgoing.Node.SetVisible(true)
	outgoing.snapTransform(c.layout.Center, outgoing.BaseScale*g.SelectScale)
	outgoing.Node.SetOpacities(1, 0)
	CancelSpin(outgoing)
	outgoing.Slot = park
	c.tweenPosition(outgoing, c.layout.Position(outSide), tm.MobileMoveToSide, 0, func() {
		outgoing.Node.SetVisible(false)
		outgoing.Node.SetOpacities(0, 0)
		outgoing.snapTransform(c.layout.Position(park), outgoing.BaseScale*g.OtherScale)
	})
	c.tweenTiltLevel(outgoing, tm.RealignMobile)
	c.tweenScale(outgoing, outgoing.BaseScale*g.OtherScale, tm.MobileMoveToSide, 0, nil)
	c.tweenOpacity(outgoing, 0, 0, tm.MobileOutFade, 0)

	incoming := c.items[index]
	incoming.Node.SetVisible(true)
	incoming.snapTransform(c.layout.Position(inSide), incoming.BaseScale*g.OtherScale)
	incoming.Node.SetOpacities(0, 0)
	CancelSpin(incoming)
	incoming.Slot = SlotCenter
	c.tweenPosition(incoming, c.layout.Center, tm.MobileMoveToSide, 0, nil)
	c.tweenOvershoot(incoming, tm.MobileMoveToSide)
	c.tweenOpacity(incoming, 1, 0, tm.Crossfade, tm.MobileInFadeDelay)
	c.tweenTiltLevel(incoming, tm.MobileMoveToSide)
	c.tweenYawFront(incoming, tm.MobileMoveToSide)
}

// snapMobile places every item at its slot instantly: the selection frontal at center, the rest
// hidden off-stage.
func (c *carousel) snapMobile(index int) {
	g := c.tuning.Geometry
	n := len(c.items)

	for _, it := range c.items {
		CancelSpin(it)
		if it.Index == index {
			it.Node.SetVisible(true)
			it.snapTransform(c.layout.Center, it.BaseScale*g.SelectScale)
			it.Node.SetOpacities(1, 0)
			it.Node.SetRotation(0, 0, 0)
			it.Slot = SlotCenter
			continue
		}
		slot := SlotFor(RelativeOffset(it.Index, index, n), false)
		it.Node.SetVisible(false)
		it.snapTransform(c.layout.Position(slot), it.BaseScale*g.OtherScale)
		it.Node.SetOpacities(0, 0)
		it.Slot = slot
	}
}
