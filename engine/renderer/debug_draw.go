package renderer

import (
	_ "embed"
	"fmt"
	"log"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-carousel/common"
)

//go:embed assets/debug_box.wgsl
var debugBoxSource string

// debugBoxCorners lists the cube corners drawn for one box: six faces, two triangles each, six
// entries per face. A corner's bits select hi over lo on x, y and z from the low bit up.
var debugBoxCorners = [36]uint32{
	0, 4, 6, 0, 6, 2, // -x
	1, 3, 7, 1, 7, 5, // +x
	0, 1, 5, 0, 5, 4, // -y
	2, 6, 7, 2, 7, 3, // +y
	0, 2, 3, 0, 3, 1, // -z
	4, 5, 7, 4, 7, 6, // +z
}

// BoundsFunc reports the model-space bounding box of a model reference.
type BoundsFunc func(ref string) (lo, hi [3]float32, ok bool)

// debugBox is the per-instance box record.
// Size: 32 bytes (std430 / WGSL aligned).
type debugBox struct {
	Lo [4]float32 // offset  0: xyz min corner (vec4<f32>)
	Hi [4]float32 // offset 16: xyz max corner (vec4<f32>)
}

const debugBoxSize = int(unsafe.Sizeof(debugBox{}))

// unitBox stands in for models the bounds lookup does not know.
var unitBox = debugBox{
	Lo: [4]float32{-0.5, -0.5, -0.5, 0},
	Hi: [4]float32{0.5, 0.5, 0.5, 0},
}

// buildDebugBoxes resolves one box per model reference, in order, reusing dst.
//
// Parameters:
//   - refs: model reference per instance
//   - bounds: lookup for model-space bounds, may be nil
//   - dst: scratch slice to reuse, may be nil
//
// Returns:
//   - []debugBox: one record per reference
func buildDebugBoxes(refs []string, bounds BoundsFunc, dst []debugBox) []debugBox {
	dst = dst[:0]
	for _, ref := range refs {
		box := unitBox
		if bounds != nil {
			if lo, hi, ok := bounds(ref); ok {
				box = debugBox{
					Lo: [4]float32{lo[0], lo[1], lo[2], 0},
					Hi: [4]float32{hi[0], hi[1], hi[2], 0},
				}
			}
		}
		dst = append(dst, box)
	}
	return dst
}

// DebugBoxes is a DrawHook that draws every visible item as its model's bounding box, one
// instanced draw per frame. The box takes the primary opacity as its warm tint and fades toward
// a dark silhouette as the silhouette opacity takes over.
type DebugBoxes struct {
	bounds BoundsFunc

	pipeline     *wgpu.RenderPipeline
	layout       *wgpu.BindGroupLayout
	bindGroup    *wgpu.BindGroup
	boundInst    *wgpu.Buffer
	cornerBuffer *wgpu.Buffer
	boxBuffer    *wgpu.Buffer
	boxCapacity  uint64

	boxes    []debugBox
	disabled bool
}

// NewDebugBoxes creates the hook. GPU objects are created on the first draw, once the device and
// target format are known.
//
// Parameters:
//   - bounds: model-space bounds lookup; unknown models are drawn as a unit cube
//
// Returns:
//   - *DebugBoxes: the hook; pass its Draw method to WithDrawHook
func NewDebugBoxes(bounds BoundsFunc) *DebugBoxes {
	return &DebugBoxes{bounds: bounds}
}

// Draw records the box draw into the open pass. It matches the DrawHook signature.
func (d *DebugBoxes) Draw(device *wgpu.Device, pass *wgpu.RenderPassEncoder, frame FrameData) {
	if d.disabled || len(frame.Instances) == 0 {
		return
	}
	if d.pipeline == nil {
		if err := d.init(device, frame); err != nil {
			log.Printf("[DebugBoxes] disabled: %v", err)
			d.disabled = true
			d.Release()
			return
		}
	}

	d.boxes = buildDebugBoxes(frame.ModelRefs, d.bounds, d.boxes)
	needed := strideCapacity(len(d.boxes), debugBoxSize)
	if d.boxBuffer == nil || needed > d.boxCapacity {
		if d.boxBuffer != nil {
			d.boxBuffer.Release()
		}
		buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Debug Box Storage",
			Size:  needed,
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			d.boxBuffer = nil
			d.boxCapacity = 0
			log.Printf("[DebugBoxes] create box buffer: %v", err)
			return
		}
		d.boxBuffer = buf
		d.boxCapacity = needed
		d.dropBindGroup()
	}
	frame.Queue.WriteBuffer(d.boxBuffer, 0, common.SliceToBytes(d.boxes))

	if d.bindGroup == nil || d.boundInst != frame.InstanceBuffer {
		d.dropBindGroup()
		bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  "Debug Box Bind Group",
			Layout: d.layout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: frame.CameraBuffer, Offset: 0, Size: wgpu.WholeSize},
				{Binding: 1, Buffer: frame.InstanceBuffer, Offset: 0, Size: wgpu.WholeSize},
				{Binding: 2, Buffer: d.boxBuffer, Offset: 0, Size: wgpu.WholeSize},
				{Binding: 3, Buffer: d.cornerBuffer, Offset: 0, Size: wgpu.WholeSize},
			},
		})
		if err != nil {
			log.Printf("[DebugBoxes] create bind group: %v", err)
			return
		}
		d.bindGroup = bg
		d.boundInst = frame.InstanceBuffer
	}

	pass.SetPipeline(d.pipeline)
	pass.SetBindGroup(0, d.bindGroup, nil)
	pass.Draw(uint32(len(debugBoxCorners)), uint32(len(frame.Instances)), 0, 0)
}

func (d *DebugBoxes) init(device *wgpu.Device, frame FrameData) error {
	if frame.Format == wgpu.TextureFormatUndefined {
		return fmt.Errorf("surface format unknown")
	}

	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Debug Box Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: debugBoxSource,
		},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	defer module.Release()

	entries := make([]wgpu.BindGroupLayoutEntry, 4)
	for i := range entries {
		entries[i] = wgpu.BindGroupLayoutEntry{
			Binding:    uint32(i),
			Visibility: wgpu.ShaderStageVertex,
		}
		entries[i].Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage
	}
	entries[0].Buffer.Type = wgpu.BufferBindingTypeUniform

	d.layout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Debug Box Bind Group Layout",
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Debug Box",
		BindGroupLayouts: []*wgpu.BindGroupLayout{d.layout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	d.pipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Debug Box Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: frame.Format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}

	corners := debugBoxCorners
	cornerBytes := common.SliceToBytes(corners[:])
	d.cornerBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Debug Box Corners",
		Size:  uint64(len(cornerBytes)),
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create corner buffer: %w", err)
	}
	frame.Queue.WriteBuffer(d.cornerBuffer, 0, cornerBytes)
	return nil
}

func (d *DebugBoxes) dropBindGroup() {
	if d.bindGroup != nil {
		d.bindGroup.Release()
		d.bindGroup = nil
	}
	d.boundInst = nil
}

// Release frees the hook's GPU objects. The hook rebuilds them if it draws again.
func (d *DebugBoxes) Release() {
	d.dropBindGroup()
	if d.pipeline != nil {
		d.pipeline.Release()
		d.pipeline = nil
	}
	if d.layout != nil {
		d.layout.Release()
		d.layout = nil
	}
	if d.cornerBuffer != nil {
		d.cornerBuffer.Release()
		d.cornerBuffer = nil
	}
	if d.boxBuffer != nil {
		d.boxBuffer.Release()
		d.boxBuffer = nil
		d.boxCapacity = 0
	}
}
