// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Vec3 is the vector type used for slot coordinates, tween endpoints and node transforms.
type Vec3 = mgl32.Vec3

// Color is a linear RGBA colour with components in [0, 1], laid out the way the GPU clear value expects.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// ParseHexColor parses a "#rrggbb" or "#rgb" sRGB string into an opaque linear Color. The surface
// re-encodes linear values to sRGB on write, so the cleared pixels match the string.
//
// Parameters:
//   - hex: the colour string
//
// Returns:
//   - Color: the parsed colour with alpha 1
//   - error: error if the string is not a valid hex colour
func ParseHexColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	r, g, b := c.LinearRgb()
	return Color{R: r, G: g, B: b, A: 1}, nil
}
