package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugBoxCornersCoverEachFace(t *testing.T) {
	require.Len(t, debugBoxCorners, 36)

	for face := 0; face < 6; face++ {
		axisBit := uint32(1) << (face / 2)
		var side uint32
		if face%2 == 1 {
			side = axisBit
		}

		corners := debugBoxCorners[face*6 : face*6+6]
		distinct := map[uint32]bool{}
		for _, c := range corners {
			require.Less(t, c, uint32(8))
			assert.Equal(t, side, c&axisBit, "face %d corner %d", face, c)
			distinct[c] = true
		}
		assert.Len(t, distinct, 4, "face %d", face)

		for tri := 0; tri < 2; tri++ {
			a, b, c := corners[tri*3], corners[tri*3+1], corners[tri*3+2]
			assert.True(t, a != b && b != c && a != c, "face %d triangle %d is degenerate", face, tri)
		}
	}
}

func TestBuildDebugBoxes(t *testing.T) {
	assert.Equal(t, 32, debugBoxSize)

	bounds := func(ref string) (lo, hi [3]float32, ok bool) {
		if ref != "knight.glb" {
			return lo, hi, false
		}
		return [3]float32{-1, 0, -0.25}, [3]float32{1, 3, 0.25}, true
	}

	boxes := buildDebugBoxes([]string{"knight.glb", "missing.glb"}, bounds, nil)
	require.Len(t, boxes, 2)
	assert.Equal(t, [4]float32{-1, 0, -0.25, 0}, boxes[0].Lo)
	assert.Equal(t, [4]float32{1, 3, 0.25, 0}, boxes[0].Hi)
	assert.Equal(t, unitBox, boxes[1])

	// scratch is reused and nil lookups fall back to the unit cube
	again := buildDebugBoxes([]string{"knight.glb"}, nil, boxes)
	require.Len(t, again, 1)
	assert.Equal(t, unitBox, again[0])
	assert.Same(t, &boxes[0], &again[0])
}

func TestStrideCapacity(t *testing.T) {
	assert.Equal(t, uint64(32), strideCapacity(0, debugBoxSize))
	assert.Equal(t, uint64(4*32), strideCapacity(3, debugBoxSize))
	assert.Equal(t, bufferCapacity(5), strideCapacity(5, GPUInstanceSize))
}
