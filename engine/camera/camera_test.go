package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	x, y, z := c.Position()
	assert.Equal(t, []float32{0.2, -0.4, 3.5}, []float32{x, y, z})
	assert.Equal(t, float32(3.5), c.Distance())
	assert.InDelta(t, math.Pi/4, c.Fov(), 1e-6)
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
}

func TestApplyProfile(t *testing.T) {
	c := NewCamera(WithAspect(0.5))
	before := c.ViewMatrix()

	c.ApplyProfile(MobileProfile())

	assert.Equal(t, float32(4.0), c.Distance())
	tx, ty, tz := c.Target()
	assert.Equal(t, []float32{0, -0.2, 0}, []float32{tx, ty, tz})
	assert.NotEqual(t, before, c.ViewMatrix())
}

func TestViewMatrixMapsTargetOntoAxis(t *testing.T) {
	c := NewCamera(WithProfile(Profile{
		Position:   [3]float32{0, 0, 5},
		Target:     [3]float32{0, 0, 0},
		FovDegrees: 60,
	}))

	v := c.ViewMatrix()
	// the target sits on the view axis, 5 units in front of the eye
	assert.InDelta(t, 0, v[12], 1e-6)
	assert.InDelta(t, 0, v[13], 1e-6)
	assert.InDelta(t, -5, v[14], 1e-6)
}

func TestSetAspectIgnoresInvalid(t *testing.T) {
	c := NewCamera(WithAspect(2))
	c.SetAspect(0)
	assert.Equal(t, float32(2), c.Aspect())

	c.SetAspect(1.5)
	assert.Equal(t, float32(1.5), c.Aspect())
	p := c.ProjectionMatrix()
	assert.InDelta(t, p[5]/1.5, p[0], 1e-6)
}

func TestUniformMarshal(t *testing.T) {
	c := NewCamera()
	u := c.Uniform()

	assert.Equal(t, 80, u.Size())
	buf := u.Marshal()
	assert.Len(t, buf, 80)
	assert.Equal(t, c.ViewProjectionMatrix(), u.ViewProj)
	assert.Equal(t, c.Distance(), u.Distance)

	// distance sits in the last four bytes
	assert.Equal(t, math.Float32bits(u.Distance), binary.LittleEndian.Uint32(buf[76:]))
	assert.Equal(t, math.Float32bits(u.ViewProj[0]), binary.LittleEndian.Uint32(buf[0:]))
}

func TestProjectionDepthRange(t *testing.T) {
	c := NewCamera(WithProfile(Profile{
		Position:   [3]float32{0, 0, 5},
		Target:     [3]float32{0, 0, 0},
		FovDegrees: 45,
	}), WithNear(0.1), WithFar(100))

	vp := mgl32.Mat4(c.ViewProjectionMatrix())
	depth := func(z float32) float32 {
		clip := vp.Mul4x1(mgl32.Vec4{0, 0, z, 1})
		return clip[2] / clip[3]
	}

	// WebGPU clip space keeps depth in [0, 1]
	assert.InDelta(t, 0, depth(5-0.1), 1e-3)
	assert.InDelta(t, 1, depth(5-100), 1e-3)
	assert.InDelta(t, 0.98, depth(0), 0.02)
}
