package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Profile is a camera placement for one viewport mode.
type Profile struct {
	Position   [3]float32 `koanf:"position"`
	Target     [3]float32 `koanf:"target"`
	FovDegrees float32    `koanf:"fov"`
}

// DesktopProfile returns the stock placement for wide viewports.
func DesktopProfile() Profile {
	return Profile{
		Position:   [3]float32{0.2, -0.4, 3.5},
		Target:     [3]float32{0, -0.2, 0},
		FovDegrees: 45,
	}
}

// MobileProfile returns the stock placement for narrow viewports, pulled back to fit the single slot.
func MobileProfile() Profile {
	return Profile{
		Position:   [3]float32{0.2, -0.2, 4.0},
		Target:     [3]float32{0, -0.2, 0},
		FovDegrees: 45,
	}
}

type cameraImpl struct {
	mu *sync.Mutex

	up       [3]float32
	position [3]float32
	target   [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera defines the interface for the carousel camera.
// The camera looks from a fixed position at a fixed target; the carousel swaps the placement
// through ApplyProfile when the viewport crosses the mobile breakpoint.
type Camera interface {
	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)

	// Distance returns the camera's z, the depth reference the carousel derives slot depths from.
	//
	// Returns:
	//   - float32: camera z
	Distance() float32

	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - [16]float32: column-major view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - [16]float32: column-major projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the combined view-projection matrix.
	//
	// Returns:
	//   - [16]float32: column-major view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Uniform returns the camera state packed for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block
	Uniform() GPUCameraUniform

	// ApplyProfile moves the camera to the profile's placement and field of view.
	//
	// Parameters:
	//   - p: the profile to apply
	ApplyProfile(p Profile)

	// SetAspect sets the aspect ratio and recalculates matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio (width / height)
	SetAspect(aspect float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the given options.
// Defaults to the desktop profile, aspect 16:9, near 0.1 and far 100.
//
// Parameters:
//   - options: variadic list of CameraBuilderOption functions
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	desktop := DesktopProfile()
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		up:       [3]float32{0, 1, 0},
		position: desktop.Position,
		target:   desktop.Target,
		fov:      mgl32.DegToRad(desktop.FovDegrees),
		aspect:   16.0 / 9.0,
		near:     0.1,
		far:      100,
	}
	for _, opt := range options {
		opt(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraImpl) Distance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[2]
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		ViewProj: c.viewProjectionMatrix,
		Eye:      c.position,
		Distance: c.position[2],
	}
}

func (c *cameraImpl) ApplyProfile(p Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p.Position
	c.target = p.Target
	c.fov = mgl32.DegToRad(p.FovDegrees)
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

// zeroToOneDepth remaps OpenGL clip depth [-1, 1] to the [0, 1] range WebGPU expects.
var zeroToOneDepth = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// updateMatrices recalculates the view, projection and view-projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	view := mgl32.LookAtV(c.position, c.target, c.up)
	proj := zeroToOneDepth.Mul4(mgl32.Perspective(c.fov, c.aspect, c.near, c.far))

	c.viewMatrix = view
	c.projectionMatrix = proj
	c.viewProjectionMatrix = proj.Mul4(view)
}
