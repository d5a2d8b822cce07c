package carousel

// Slot is the named placement an item occupies in the carousel.
type Slot uint8

const (
	SlotOffRight Slot = iota
	SlotOffLeft
	SlotSideLeft
	SlotSideRight
	SlotCenter
)

func (s Slot) String() string {
	switch s {
	case SlotCenter:
		return "center"
	case SlotSideLeft:
		return "sideLeft"
	case SlotSideRight:
		return "sideRight"
	case SlotOffLeft:
		return "offLeft"
	case SlotOffRight:
		return "offRight"
	default:
		return "unknown"
	}
}

// IsOff reports whether the slot is one of the two off-stage slots.
func (s Slot) IsOff() bool {
	return s == SlotOffLeft || s == SlotOffRight
}

// IsSide reports whether the slot is one of the two side slots.
func (s Slot) IsSide() bool {
	return s == SlotSideLeft || s == SlotSideRight
}

// OnStage reports whether the slot is visible on stage: center or a side.
func (s Slot) OnStage() bool {
	return s == SlotCenter || s.IsSide()
}

// IsLeft reports whether the slot sits left of center.
func (s Slot) IsLeft() bool {
	return s == SlotSideLeft || s == SlotOffLeft
}

// ViewportMode selects the layout and timing policy.
type ViewportMode uint8

const (
	ModeDesktop ViewportMode = iota
	ModeMobile
)

func (m ViewportMode) String() string {
	if m == ModeMobile {
		return "mobile"
	}
	return "desktop"
}

// Direction is the sign of the last navigation step: -1 previous, +1 next, 0 none yet.
type Direction int8

const (
	DirectionNone     Direction = 0
	DirectionNext     Direction = 1
	DirectionPrevious Direction = -1
)
