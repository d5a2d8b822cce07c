package carousel

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarouselRejectsBadInitialIndex(t *testing.T) {
	node := game_object.NewGameObject()
	_, err := NewCarousel(WithItems(NewItem(0, node, Metadata{})), WithInitialIndex(3))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestWithItemsSkipsInvalidAndReindexes(t *testing.T) {
	a := NewItem(5, game_object.NewGameObject(game_object.WithID(1)), Metadata{})
	b := &Item{}
	c := NewItem(9, game_object.NewGameObject(game_object.WithID(2)), Metadata{})

	car, err := NewCarousel(WithItems(a, nil, b, c))
	require.NoError(t, err)

	require.Equal(t, 2, car.Len())
	assert.Equal(t, 0, car.Items()[0].Index)
	assert.Equal(t, 1, car.Items()[1].Index)
}

func TestEmptyCarouselIsNoop(t *testing.T) {
	c, err := NewCarousel()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		c.Next()
		c.Previous()
		c.Relayout()
		c.SetViewport(Viewport{Width: 500, Height: 800, CameraDistance: 4})
		c.PointerDown(0, true, 1, 1, 0)
		c.PointerMove(0, 5, 5, time.Millisecond)
		c.PointerUp(0)
		c.Blur()
		c.Update(time.Second, 0.016)
		c.Close()
	})
	assert.Nil(t, c.Selected())
	assert.Equal(t, 0, c.SelectedIndex())
	assert.False(t, c.Dragging())
	assert.ErrorIs(t, c.Select(0), ErrIndexOutOfRange)
}

func TestSelectSameIndexIsNoop(t *testing.T) {
	r := newRig(t, 5, desktopWidth)

	require.NoError(t, r.c.Select(0))
	assert.Equal(t, DirectionNone, r.c.Direction())
	assert.Equal(t, 0, r.c.Tweens().Len())
	assert.ErrorIs(t, r.c.Select(-1), ErrIndexOutOfRange)
}

func TestSetViewportCrossesBreakpoint(t *testing.T) {
	r := newRig(t, 5, desktopWidth, WithInitialIndex(1))
	require.Equal(t, ModeDesktop, r.c.Mode())
	require.Equal(t, SlotSideRight, r.item(2).Slot)

	assert.Equal(t, ModeMobile, r.c.ModeFor(768))
	r.c.SetViewport(Viewport{Width: 700, Height: 1200, CameraDistance: 4})

	assert.Equal(t, ModeMobile, r.c.Mode())
	assert.Equal(t, 1, r.c.SelectedIndex())
	assert.False(t, r.c.Layout().ShowSides)
	assert.Equal(t, SlotCenter, r.item(1).Slot)
	assert.Equal(t, r.c.Layout().Center, r.item(1).position())
	assert.Equal(t, SlotOffRight, r.item(2).Slot)
	assert.False(t, r.item(2).Node.Visible())
	assert.Equal(t, 0, r.c.Tweens().Len())

	r.c.SetViewport(Viewport{Width: 1920, Height: 1080, CameraDistance: 3.5})
	assert.Equal(t, ModeDesktop, r.c.Mode())
	assert.Equal(t, SlotSideRight, r.item(2).Slot)
	assert.True(t, r.item(2).Node.Visible())
	assert.InDelta(t, 1.5, r.c.Layout().Spacing, 1e-6)
}

func TestDragThroughCarousel(t *testing.T) {
	r := newRig(t, 5, desktopWidth)
	center := r.c.Selected()

	r.c.PointerDown(1, false, 0, 0, 0)
	assert.False(t, r.c.Dragging())

	r.c.PointerDown(0, true, 100, 100, time.Second)
	require.True(t, r.c.Dragging())
	r.c.PointerMove(0, 200, 100, time.Second+100*time.Millisecond)

	_, yaw, _ := center.Node.Rotation()
	assert.InDelta(t, 0.8, yaw, 1e-5)

	r.c.PointerUp(0)
	assert.False(t, r.c.Dragging())
	assert.InDelta(t, 8.0, center.SpinVelocity, 1e-3)
	assert.Equal(t, float32(0), center.SpinTarget)

	initial := center.SpinVelocity
	for range 95 {
		r.c.Update(r.clock.Advance(16*time.Millisecond), 1.0/60)
	}
	assert.Less(t, abs32(center.SpinVelocity), 0.01*initial)
	assert.Equal(t, 0, r.c.SelectedIndex())
}

func TestNavigationReleasesDrag(t *testing.T) {
	r := newRig(t, 5, desktopWidth)
	dragged := r.c.Selected()

	r.c.PointerDown(0, true, 0, 0, 0)
	r.c.PointerMove(0, 50, 0, 50*time.Millisecond)
	r.c.Next()

	assert.False(t, r.c.Dragging())
	assert.Equal(t, SlotSideLeft, dragged.Slot)
	assert.False(t, dragged.Frozen)

	r.c.PointerDown(0, true, 0, 0, 0)
	r.c.Blur()
	assert.False(t, r.c.Dragging())

	r.c.PointerDown(0, true, 0, 0, 0)
	r.c.PointerCancel(0)
	assert.False(t, r.c.Dragging())
}

func TestCloseDropsTransitions(t *testing.T) {
	r := newRig(t, 5, desktopWidth)
	r.c.Next()
	require.Positive(t, r.c.Tweens().Len())

	r.c.Close()
	assert.Equal(t, 0, r.c.Tweens().Len())
}
