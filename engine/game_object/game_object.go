package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id      uint64
	name    string
	visible atomic.Bool

	position common.Vec3
	rotation common.Vec3
	scale    float32

	primaryOpacity    float32
	silhouetteOpacity float32

	// normalization transform applied beneath the node transform so every model fits the same footprint
	modelRef    string
	modelOffset common.Vec3
	modelScale  float32
}

// GameObject is the scene node the carousel animates. It holds a position, a uniform scale,
// an Euler rotation (tilt-X, yaw-Y, roll-Z), a visibility flag and two independently
// controlled opacity channels: the primary material group and the flat silhouette group.
//
// A GameObject is not safe for concurrent mutation; the frame loop owns it.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the human readable name the object was built with.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Visible reports whether the object should be submitted for rendering.
	//
	// Returns:
	//   - bool: true if the object is visible
	Visible() bool

	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the Euler rotation in radians.
	//
	// Returns:
	//   - rx: tilt around X
	//   - ry: yaw around Y
	//   - rz: roll around Z
	Rotation() (rx, ry, rz float32)

	// Scale returns the uniform scale factor.
	//
	// Returns:
	//   - float32: the scale factor
	Scale() float32

	// Opacities returns the primary and silhouette opacity channels.
	//
	// Returns:
	//   - primary: opacity of the original material group
	//   - silhouette: opacity of the silhouette material group
	Opacities() (primary, silhouette float32)

	// ModelRef returns the asset reference the renderer's draw hook resolves meshes with.
	//
	// Returns:
	//   - string: the model reference
	ModelRef() string

	// ModelTransform returns the normalization transform applied beneath the node transform.
	//
	// Returns:
	//   - offset: translation applied to the model's vertices
	//   - scale: uniform scale applied to the model's vertices
	ModelTransform() (offset common.Vec3, scale float32)

	// ModelMatrix writes the full column-major world matrix (node transform times normalization
	// transform) into out.
	//
	// Parameters:
	//   - out: destination slice (must be at least 16 elements)
	ModelMatrix(out []float32)

	// SetVisible sets the visibility flag.
	//
	// Parameters:
	//   - visible: true to render the object
	SetVisible(visible bool)

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation in radians.
	//
	// Parameters:
	//   - rx: tilt around X
	//   - ry: yaw around Y
	//   - rz: roll around Z
	SetRotation(rx, ry, rz float32)

	// SetScale sets the uniform scale factor.
	//
	// Parameters:
	//   - s: the scale factor
	SetScale(s float32)

	// SetOpacities sets both opacity channels. Values are clamped to [0, 1].
	//
	// Parameters:
	//   - primary: opacity of the original material group
	//   - silhouette: opacity of the silhouette material group
	SetOpacities(primary, silhouette float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject with the given options applied.
// Defaults to invisible, unit scale, full primary opacity and no silhouette.
//
// Parameters:
//   - options: variadic list of GameObjectBuilderOption functions
//
// Returns:
//   - GameObject: the newly created scene node
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale:          1,
		modelScale:     1,
		primaryOpacity: 1,
	}
	for _, opt := range options {
		opt(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Visible() bool {
	return g.visible.Load()
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Scale() float32 {
	return g.scale
}

func (g *gameObject) Opacities() (primary, silhouette float32) {
	return g.primaryOpacity, g.silhouetteOpacity
}

func (g *gameObject) ModelRef() string {
	return g.modelRef
}

func (g *gameObject) ModelTransform() (offset common.Vec3, scale float32) {
	return g.modelOffset, g.modelScale
}

func (g *gameObject) ModelMatrix(out []float32) {
	node := mgl32.Translate3D(g.position[0], g.position[1], g.position[2]).
		Mul4(mgl32.HomogRotate3DY(g.rotation[1])).
		Mul4(mgl32.HomogRotate3DX(g.rotation[0])).
		Mul4(mgl32.HomogRotate3DZ(g.rotation[2])).
		Mul4(mgl32.Scale3D(g.scale, g.scale, g.scale))
	inner := mgl32.Translate3D(g.modelOffset[0], g.modelOffset[1], g.modelOffset[2]).
		Mul4(mgl32.Scale3D(g.modelScale, g.modelScale, g.modelScale))
	m := node.Mul4(inner)
	copy(out, m[:])
}

func (g *gameObject) SetVisible(visible bool) {
	g.visible.Store(visible)
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = common.Vec3{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = common.Vec3{rx, ry, rz}
}

func (g *gameObject) SetScale(s float32) {
	g.scale = s
}

func (g *gameObject) SetOpacities(primary, silhouette float32) {
	g.primaryOpacity = mgl32.Clamp(primary, 0, 1)
	g.silhouetteOpacity = mgl32.Clamp(silhouette, 0, 1)
}
