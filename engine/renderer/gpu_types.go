package renderer

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
)

// GPUInstance is the per-item record uploaded to the instance storage buffer.
// Size: 80 bytes (std430 / WGSL aligned).
type GPUInstance struct {
	Model     [16]float32 // offset  0: world matrix including model normalization (mat4x4<f32>)
	Opacities [4]float32  // offset 64: x = primary, y = silhouette, zw unused (vec4<f32>)
}

// GPUInstanceSize is the byte size of one GPUInstance.
const GPUInstanceSize = int(unsafe.Sizeof(GPUInstance{}))

// BuildInstances appends one record per visible node to dst and returns the extended slice
// together with the model reference of each record, in the same order.
//
// Parameters:
//   - nodes: scene nodes, usually every carousel item's node
//   - dst: scratch slice to reuse, may be nil
//   - refs: scratch slice to reuse for model references, may be nil
//
// Returns:
//   - []GPUInstance: the instance records
//   - []string: model reference per record
func BuildInstances(nodes []game_object.GameObject, dst []GPUInstance, refs []string) ([]GPUInstance, []string) {
	dst = dst[:0]
	refs = refs[:0]
	for _, n := range nodes {
		if n == nil || !n.Visible() {
			continue
		}
		var inst GPUInstance
		n.ModelMatrix(inst.Model[:])
		primary, silhouette := n.Opacities()
		inst.Opacities = [4]float32{primary, silhouette, 0, 0}
		dst = append(dst, inst)
		refs = append(refs, n.ModelRef())
	}
	return dst, refs
}

// bufferCapacity returns the byte size to allocate for count instances, rounded up to a power of
// two instance count so a growing carousel does not reallocate every frame.
func bufferCapacity(count int) uint64 {
	return strideCapacity(count, GPUInstanceSize)
}

// strideCapacity rounds count up to a power of two and returns that many records of stride bytes.
func strideCapacity(count, stride int) uint64 {
	n := 1
	for n < count {
		n <<= 1
	}
	return uint64(n * stride)
}
