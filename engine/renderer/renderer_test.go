package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
)

func TestGPUInstanceLayout(t *testing.T) {
	assert.Equal(t, 80, GPUInstanceSize)

	data := common.SliceToBytes([]GPUInstance{{}, {}})
	assert.Len(t, data, 160)
}

func TestBuildInstancesSkipsHidden(t *testing.T) {
	shown := game_object.NewGameObject(
		game_object.WithVisible(true),
		game_object.WithPosition(1, 2, 3),
		game_object.WithOpacities(0.4, 0.65),
		game_object.WithModel("hero.glb", common.Vec3{}, 1),
	)
	hidden := game_object.NewGameObject(game_object.WithVisible(false))
	nodes := []game_object.GameObject{hidden, shown, nil}

	instances, refs := BuildInstances(nodes, nil, nil)

	assert.Len(t, instances, 1)
	assert.Equal(t, []string{"hero.glb"}, refs)
	assert.Equal(t, [4]float32{0.4, 0.65, 0, 0}, instances[0].Opacities)
	assert.InDelta(t, 1, instances[0].Model[12], 1e-6)
	assert.InDelta(t, 2, instances[0].Model[13], 1e-6)
	assert.InDelta(t, 3, instances[0].Model[14], 1e-6)
}

func TestBuildInstancesReusesScratch(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithVisible(true))
	scratch := make([]GPUInstance, 0, 8)

	instances, _ := BuildInstances([]game_object.GameObject{node}, scratch, nil)
	instances, _ = BuildInstances([]game_object.GameObject{node, node}, instances, nil)

	assert.Len(t, instances, 2)
	assert.Equal(t, 8, cap(instances))
}

func TestBufferCapacity(t *testing.T) {
	tests := []struct {
		count int
		want  uint64
	}{
		{count: 0, want: 80},
		{count: 1, want: 80},
		{count: 3, want: 4 * 80},
		{count: 8, want: 8 * 80},
		{count: 9, want: 16 * 80},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bufferCapacity(tt.count), "count %d", tt.count)
	}
}

func TestPresentModes(t *testing.T) {
	assert.Equal(t, PresentModeVSync, PresentModeFor(true))
	assert.Equal(t, PresentModeUncapped, PresentModeFor(false))
	assert.Equal(t, wgpu.PresentModeFifo, wgpuPresentMode(PresentModeVSync))
	assert.Equal(t, wgpu.PresentModeImmediate, wgpuPresentMode(PresentModeUncapped))
}
