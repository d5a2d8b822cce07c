package camera

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-carousel/common"
)

// GPUCameraUniform is the camera block the draw hook binds, 80 bytes in WGSL uniform layout:
//
//	struct Camera {
//	    view_proj: mat4x4<f32>,
//	    eye:       vec3<f32>,
//	    distance:  f32,
//	}
//
// Distance is the depth reference the carousel lays its slots out against; shaders use it to
// fade the silhouette pass with depth.
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset  0
	Eye      [3]float32  // offset 64
	Distance float32     // offset 76
}

// Size returns the size of the uniform in bytes.
//
// Returns:
//   - int: 80
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal copies the uniform into a fresh byte slice for upload.
//
// Returns:
//   - []byte: the little-endian bytes of the uniform
func (g *GPUCameraUniform) Marshal() []byte {
	return append([]byte(nil), common.SliceToBytes([]GPUCameraUniform{*g})...)
}
