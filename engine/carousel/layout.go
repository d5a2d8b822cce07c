package carousel

import (
	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/go-gl/mathgl/mgl32"
)

// RelativeOffset returns the signed shortest circular distance from sel to i among n items.
// The result lies in (-n/2, n/2]; n <= 0 yields 0.
//
// Parameters:
//   - i: item index
//   - sel: selected index
//   - n: item count
//
// Returns:
//   - int: signed offset, negative to the left of the selection
func RelativeOffset(i, sel, n int) int {
	if n <= 0 {
		return 0
	}
	d := ((i-sel)%n + n) % n
	if 2*d > n {
		d -= n
	}
	return d
}

// SlotFor maps a relative offset onto a slot. Side slots only exist when showSides is set;
// everything else beyond center parks off-stage on the side of the offset's sign.
//
// Parameters:
//   - offset: result of RelativeOffset
//   - showSides: whether the viewport has side slots
//
// Returns:
//   - Slot: the nominal slot
func SlotFor(offset int, showSides bool) Slot {
	switch {
	case offset == 0:
		return SlotCenter
	case showSides && offset == -1:
		return SlotSideLeft
	case showSides && offset == 1:
		return SlotSideRight
	case offset <= -1:
		return SlotOffLeft
	default:
		return SlotOffRight
	}
}

// ResolveExit applies the exit override. An item leaving center or a side for an off slot keeps
// travelling the way it was already heading: out of a side it parks on that side, out of center
// it follows the navigation direction.
//
// Parameters:
//   - prev: the slot the item currently occupies
//   - next: the nominal slot from SlotFor
//   - dir: the last navigation direction
//
// Returns:
//   - Slot: the slot to move to
//   - bool: true if the move is an exit
func ResolveExit(prev, next Slot, dir Direction) (Slot, bool) {
	if !prev.OnStage() || !next.IsOff() {
		return next, false
	}
	switch prev {
	case SlotSideLeft:
		return SlotOffLeft, true
	case SlotSideRight:
		return SlotOffRight, true
	default:
		if dir >= 0 {
			return SlotOffRight, true
		}
		return SlotOffLeft, true
	}
}

// ModeForWidth picks the viewport mode for a framebuffer width.
//
// Parameters:
//   - width: viewport width in pixels
//   - mobileMax: largest width still treated as mobile
//
// Returns:
//   - ViewportMode: ModeMobile when width <= mobileMax
func ModeForWidth(width, mobileMax int) ViewportMode {
	if width <= mobileMax {
		return ModeMobile
	}
	return ModeDesktop
}

// DepthOffsets returns the z of the center slot and of the back row for a camera at distance camDist.
// The center is pulled toward the camera but never past it; the back row never recedes beyond backMin.
//
// Parameters:
//   - camDist: camera distance along z
//   - g: geometry tuning
//
// Returns:
//   - near: z of the center slot
//   - back: z of the side row
func DepthOffsets(camDist float32, g GeometryTuning) (near, back float32) {
	near = mgl32.Clamp(camDist*g.NearFrac, 0, camDist-0.1)
	back = -camDist * g.BackFrac
	if back < g.BackMin {
		back = g.BackMin
	}
	return near, back
}

// Layout is the resolved world-space geometry for one viewport.
type Layout struct {
	Mode      ViewportMode
	Spacing   float32
	ShowSides bool

	Center    common.Vec3
	SideLeft  common.Vec3
	SideRight common.Vec3
	OffLeft   common.Vec3
	OffRight  common.Vec3
}

// NewLayout resolves the slot coordinates for a viewport.
//
// Parameters:
//   - mode: the viewport mode
//   - width: viewport width in pixels, used for desktop spacing
//   - camDist: camera distance along z, used for depth offsets
//   - g: geometry tuning
//
// Returns:
//   - Layout: the resolved geometry
func NewLayout(mode ViewportMode, width int, camDist float32, g GeometryTuning) Layout {
	near, back := DepthOffsets(camDist, g)
	l := Layout{
		Mode:   mode,
		Center: common.Vec3{0, g.CenterY, near},
	}

	if mode == ModeMobile {
		l.Spacing = g.SpacingBase * g.MobileSpacingMult
		side := l.Spacing * g.MobileSideMult
		off := l.Spacing * g.MobileOffMult
		offZ := back * g.MobileOffZMult
		l.SideLeft = common.Vec3{-side, g.LateralY, back}
		l.SideRight = common.Vec3{side, g.LateralY, back}
		l.OffLeft = common.Vec3{-off, g.OffY, offZ}
		l.OffRight = common.Vec3{off, g.OffY, offZ}
		return l
	}

	l.ShowSides = true
	l.Spacing = desktopSpacing(width, g)
	off := l.Spacing * g.OffMult
	offZ := back * g.OffZMult
	l.SideLeft = common.Vec3{-l.Spacing, g.LateralY, back}
	l.SideRight = common.Vec3{l.Spacing, g.LateralY, back}
	l.OffLeft = common.Vec3{-off, g.OffY, offZ}
	l.OffRight = common.Vec3{off, g.OffY, offZ}
	return l
}

// Position returns the coordinate of a slot.
func (l Layout) Position(s Slot) common.Vec3 {
	switch s {
	case SlotCenter:
		return l.Center
	case SlotSideLeft:
		return l.SideLeft
	case SlotSideRight:
		return l.SideRight
	case SlotOffLeft:
		return l.OffLeft
	default:
		return l.OffRight
	}
}

// desktopSpacing widens the side gap linearly from the breakpoint up to SpacingMaxWidth.
func desktopSpacing(width int, g GeometryTuning) float32 {
	span := float32(g.SpacingMaxWidth - g.MobileMaxWidth)
	if span <= 0 {
		return 1
	}
	t := mgl32.Clamp(float32(width-g.MobileMaxWidth)/span, 0, 1)
	return 1 + g.SpacingMaxBoost*t
}
