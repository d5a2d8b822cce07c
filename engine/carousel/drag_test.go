package carousel

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDragItem() *Item {
	return NewItem(0, game_object.NewGameObject(), Metadata{})
}

func TestStepSpinSmoothsTowardTarget(t *testing.T) {
	it := newDragItem()
	ResumeSpin(it, 0.9)

	StepSpin([]*Item{it}, 0.1, 3)
	assert.InDelta(t, 0.27, it.SpinVelocity, 1e-6)
	_, ry, _ := it.Node.Rotation()
	assert.InDelta(t, 0.027, ry, 1e-6)

	// a large dt saturates the smoothing factor
	StepSpin([]*Item{it}, 1, 3)
	assert.InDelta(t, 0.9, it.SpinVelocity, 1e-6)
}

func TestStepSpinSkipsFrozen(t *testing.T) {
	it := newDragItem()
	it.SpinVelocity = 5
	it.SpinTarget = 5

	StepSpin([]*Item{it}, 0.016, 3)
	_, ry, _ := it.Node.Rotation()
	assert.Equal(t, float32(0), ry)

	CancelSpin(it)
	assert.True(t, it.Frozen)
	assert.Equal(t, float32(0), it.SpinVelocity)
	assert.Equal(t, float32(0), it.SpinTarget)
}

func TestDragMoveAndRelease(t *testing.T) {
	tuning := DefaultTuning()
	d := NewDragController(tuning.Drag)
	it := newDragItem()
	ResumeSpin(it, 0.9)
	it.SpinVelocity = 0.5

	require.True(t, d.Begin(it, 1, true, 100, 100, time.Second))
	assert.True(t, it.Frozen)
	assert.Equal(t, float32(0), it.SpinVelocity)

	d.Move(1, 200, 100, time.Second+100*time.Millisecond)

	_, ry, rz := it.Node.Rotation()
	assert.InDelta(t, 100*tuning.Drag.YawSensitivity, ry, 1e-5)
	assert.Equal(t, float32(0), rz)
	assert.InDelta(t, 100*tuning.Drag.YawSensitivity/0.1, d.Velocity(), 1e-3)

	d.End(1)
	assert.False(t, d.Active())
	assert.False(t, it.Frozen)
	assert.Equal(t, float32(0), it.SpinTarget)
	assert.InDelta(t, 8.0, it.SpinVelocity, 1e-3)

	// released momentum coasts back to rest
	initial := it.SpinVelocity
	for range 95 {
		StepSpin([]*Item{it}, 1.0/60, tuning.Geometry.SpinSmoothing)
	}
	assert.Less(t, abs32(it.SpinVelocity), 0.01*initial)
}

func TestDragTiltClampAndReversal(t *testing.T) {
	tuning := DefaultTuning()
	d := NewDragController(tuning.Drag)
	it := newDragItem()

	require.True(t, d.Begin(it, 0, true, 0, 0, 0))

	// with tilt reversal on, dragging down tilts positively
	d.Move(0, 0, 10, 10*time.Millisecond)
	rx, _, _ := it.Node.Rotation()
	assert.InDelta(t, 10*tuning.Drag.TiltSensitivity, rx, 1e-6)

	d.Move(0, 0, 1000, 20*time.Millisecond)
	rx, _, _ = it.Node.Rotation()
	assert.Equal(t, tuning.Drag.TiltMax, rx)

	d.Move(0, 0, -2000, 30*time.Millisecond)
	rx, _, _ = it.Node.Rotation()
	assert.Equal(t, -tuning.Drag.TiltMax, rx)

	tuning.Drag.ReverseYaw = true
	tuning.Drag.ReverseTilt = false
	d2 := NewDragController(tuning.Drag)
	it2 := newDragItem()
	require.True(t, d2.Begin(it2, 0, true, 0, 0, 0))
	d2.Move(0, 10, 10, 10*time.Millisecond)
	rx, ry, _ := it2.Node.Rotation()
	assert.InDelta(t, -10*tuning.Drag.YawSensitivity, ry, 1e-6)
	assert.InDelta(t, -10*tuning.Drag.TiltSensitivity, rx, 1e-6)
}

func TestDragIgnoresOtherPointers(t *testing.T) {
	d := NewDragController(DefaultTuning().Drag)
	it := newDragItem()

	assert.False(t, d.Begin(it, 3, false, 0, 0, 0))
	assert.False(t, d.Active())

	require.True(t, d.Begin(it, 1, true, 0, 0, 0))
	assert.False(t, d.Begin(it, 2, true, 0, 0, 0))

	d.Move(2, 500, 0, time.Millisecond)
	_, ry, _ := it.Node.Rotation()
	assert.Equal(t, float32(0), ry)

	d.End(2)
	assert.True(t, d.Active())

	d.Cancel()
	assert.False(t, d.Active())
	assert.False(t, it.Frozen)
}

func TestDragVelocityFloorsElapsed(t *testing.T) {
	d := NewDragController(DefaultTuning().Drag)
	it := newDragItem()

	require.True(t, d.Begin(it, 0, true, 0, 0, time.Second))
	d.Move(0, 1, 0, time.Second)
	assert.InDelta(t, 0.008/0.001, d.Velocity(), 1e-2)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
