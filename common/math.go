package common

import (
	"math"
	"unsafe"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Lerp linearly interpolates between a and b by t.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// EaseInOutQuint maps a linear fraction in [0, 1] onto a quintic ease-in-out curve.
// The curve is symmetric around 0.5 and has zero slope at both ends.
//
// Parameters:
//   - t: linear fraction, expected in [0, 1]
//
// Returns:
//   - float32: eased fraction in [0, 1]
func EaseInOutQuint(t float32) float32 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := -2*t + 2
	return 1 - (u*u*u*u*u)/2
}

// WrapAngle folds an angle in radians into the half-open range [-Pi, Pi).
//
// Parameters:
//   - a: angle in radians
//
// Returns:
//   - float32: the equivalent angle in [-Pi, Pi)
func WrapAngle(a float32) float32 {
	w := math.Mod(float64(a)+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	return float32(w - math.Pi)
}

