package loader

import (
	"math"

	"github.com/Carmen-Shannon/oxy-carousel/common"
)

// Bounds is an axis-aligned box in model space.
type Bounds struct {
	Min common.Vec3
	Max common.Vec3
}

// emptyBounds returns an inverted box that any Extend call replaces.
func emptyBounds() Bounds {
	inf := float32(math.Inf(1))
	return Bounds{
		Min: common.Vec3{inf, inf, inf},
		Max: common.Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether the box has never been extended.
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend returns the union of b and o.
func (b Bounds) Extend(o Bounds) Bounds {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], o.Min[i])
		b.Max[i] = max(b.Max[i], o.Max[i])
	}
	return b
}

// Size returns the extent along each axis.
func (b Bounds) Size() common.Vec3 {
	if b.Empty() {
		return common.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() common.Vec3 {
	if b.Empty() {
		return common.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Normalization returns the transform that fits the box's longest axis to target and centers
// it on the origin. A degenerate box is treated as unit sized.
//
// Parameters:
//   - target: the desired length of the longest axis
//
// Returns:
//   - offset: translation applied after scaling
//   - scale: uniform scale factor
func (b Bounds) Normalization(target float32) (offset common.Vec3, scale float32) {
	size := b.Size()
	maxAxis := max(size[0], size[1], size[2])
	if maxAxis <= 0 {
		maxAxis = 1
	}
	scale = target / maxAxis
	return b.Center().Mul(-scale), scale
}
