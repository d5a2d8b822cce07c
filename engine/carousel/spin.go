package carousel

import "github.com/Carmen-Shannon/oxy-carousel/common"

// StepSpin advances the idle spin of every unfrozen item. Velocity eases toward the item's
// target at rate min(1, dt*smoothing) and yaw integrates the eased velocity.
//
// Parameters:
//   - items: the carousel items
//   - dt: frame delta in seconds
//   - smoothing: exponential smoothing rate per second
func StepSpin(items []*Item, dt, smoothing float32) {
	k := min(1, dt*smoothing)
	for _, it := range items {
		if it.Frozen {
			continue
		}
		it.SpinVelocity = common.Lerp(it.SpinVelocity, it.SpinTarget, k)
		rx, ry, rz := it.Node.Rotation()
		it.Node.SetRotation(rx, ry+it.SpinVelocity*dt, rz)
	}
}

// CancelSpin stops the item dead and freezes it.
func CancelSpin(it *Item) {
	it.SpinTarget = 0
	it.SpinVelocity = 0
	it.Frozen = true
}

// ResumeSpin unfreezes the item and sets the velocity it eases toward.
func ResumeSpin(it *Item, target float32) {
	it.Frozen = false
	it.SpinTarget = target
}
