package game_object

import (
	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets a human readable name, usually the catalog id of the model.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithVisible sets whether the GameObject starts visible.
//
// Parameters:
//   - visible: true to render the object
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the visibility flag
func WithVisible(visible bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.visible.Store(visible)
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = common.Vec3{x, y, z}
	}
}

// WithScale sets the initial uniform scale of the GameObject.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(s float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = s
	}
}

// WithRotation sets the initial Euler rotation in radians.
//
// Parameters:
//   - rx: tilt around X
//   - ry: yaw around Y
//   - rz: roll around Z
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = common.Vec3{rx, ry, rz}
	}
}

// WithOpacities sets the initial primary and silhouette opacity.
//
// Parameters:
//   - primary: opacity of the original material group
//   - silhouette: opacity of the silhouette material group
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the opacity channels
func WithOpacities(primary, silhouette float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.primaryOpacity = mgl32.Clamp(primary, 0, 1)
		obj.silhouetteOpacity = mgl32.Clamp(silhouette, 0, 1)
	}
}

// WithModel attaches the model reference and its normalization transform.
//
// Parameters:
//   - ref: asset reference resolved by the renderer's draw hook
//   - offset: translation applied beneath the node transform
//   - scale: uniform scale applied beneath the node transform
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the model
func WithModel(ref string, offset common.Vec3, scale float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.modelRef = ref
		obj.modelOffset = offset
		obj.modelScale = scale
	}
}
