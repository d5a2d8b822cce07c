package tween

import (
	"time"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// PropertyGroup identifies which part of a node a Task writes to.
// A node can carry at most one Task per group at a time.
type PropertyGroup uint8

const (
	// GroupPosition writes all three position components.
	GroupPosition PropertyGroup = iota
	// GroupScale writes the uniform scale from component 0.
	GroupScale
	// GroupRotationYaw writes the Y rotation from component 0.
	GroupRotationYaw
	// GroupRotationTilt writes the X rotation from component 0 and the Z rotation from component 1.
	GroupRotationTilt
	// GroupOpacity writes the primary opacity from component 0 and the silhouette opacity from component 1.
	GroupOpacity
	// GroupHold writes nothing and only delays its completion callback.
	GroupHold
)

// AllGroups lists every property group in declaration order.
var AllGroups = []PropertyGroup{
	GroupPosition,
	GroupScale,
	GroupRotationYaw,
	GroupRotationTilt,
	GroupOpacity,
	GroupHold,
}

func (g PropertyGroup) String() string {
	switch g {
	case GroupPosition:
		return "position"
	case GroupScale:
		return "scale"
	case GroupRotationYaw:
		return "rotationYaw"
	case GroupRotationTilt:
		return "rotationTilt"
	case GroupOpacity:
		return "opacity"
	case GroupHold:
		return "hold"
	default:
		return "unknown"
	}
}

// Task is one in-flight property transition. Values are packed into a Vec3 and interpreted
// by the Task's PropertyGroup.
type Task struct {
	Target     game_object.GameObject
	Group      PropertyGroup
	From       common.Vec3
	To         common.Vec3
	Start      time.Duration
	End        time.Duration
	OnComplete func()

	removed bool
}

// fraction returns the clamped linear progress of the task at now.
func (t *Task) fraction(now time.Duration) float32 {
	span := t.End - t.Start
	if span <= 0 {
		if now >= t.Start {
			return 1
		}
		return 0
	}
	f := float32(float64(now-t.Start) / float64(span))
	return mgl32.Clamp(f, 0, 1)
}

// apply writes the value at eased fraction e to the target node.
func (t *Task) apply(e float32) {
	var v common.Vec3
	for i := range v {
		v[i] = common.Lerp(t.From[i], t.To[i], e)
	}
	// exact endpoint so chained tasks start from the scheduled value
	if e >= 1 {
		v = t.To
	}

	switch t.Group {
	case GroupPosition:
		t.Target.SetPosition(v[0], v[1], v[2])
	case GroupScale:
		t.Target.SetScale(v[0])
	case GroupRotationYaw:
		rx, _, rz := t.Target.Rotation()
		t.Target.SetRotation(rx, v[0], rz)
	case GroupRotationTilt:
		_, ry, _ := t.Target.Rotation()
		t.Target.SetRotation(v[0], ry, v[1])
	case GroupOpacity:
		t.Target.SetOpacities(v[0], v[1])
	case GroupHold:
	}
}
