package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	near float32
	far  float32

	layerCullDistances common.LayerDistances
	layerCullSpherical bool

	destroyed bool
}

// Camera defines the interface for an engine camera as seen by the culling system.
// The camera owns a per-layer cull distance table and a flag selecting spherical
// (distance from the camera position) or planar (distance along the view axis)
// culling. The renderer reads both each frame; the layer culling registry writes them.
type Camera interface {
	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	// Layers without a cull distance are culled at the far plane only.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// LayerCullDistances returns a copy of the per-layer cull distance table.
	// A zero entry means the layer is not distance culled.
	//
	// Returns:
	//   - common.LayerDistances: the cull distance table
	LayerCullDistances() common.LayerDistances

	// SetLayerCullDistances replaces the per-layer cull distance table.
	//
	// Parameters:
	//   - distances: the new cull distance table
	SetLayerCullDistances(distances common.LayerDistances)

	// LayerCullSpherical returns whether layer culling measures spherical distance.
	//
	// Returns:
	//   - bool: true for spherical culling, false for planar culling
	LayerCullSpherical() bool

	// SetLayerCullSpherical selects spherical or planar layer culling.
	//
	// Parameters:
	//   - spherical: true for spherical culling
	SetLayerCullSpherical(spherical bool)

	// LayerCullUniform returns the GPU representation of the layer culling state.
	//
	// Returns:
	//   - GPULayerCullUniform: the uniform ready for marshaling
	LayerCullUniform() GPULayerCullUniform

	// Destroy marks the camera as destroyed. Systems holding a reference to a destroyed
	// camera stop writing to it.
	Destroy()

	// Destroyed returns whether Destroy has been called.
	//
	// Returns:
	//   - bool: true if destroyed
	Destroyed() bool
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default clipping planes and no layer culling.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:   &sync.Mutex{},
		near: 0.1,
		far:  100.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
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

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *cameraImpl) LayerCullDistances() common.LayerDistances {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layerCullDistances
}

func (c *cameraImpl) SetLayerCullDistances(distances common.LayerDistances) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layerCullDistances = distances
}

func (c *cameraImpl) LayerCullSpherical() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layerCullSpherical
}

func (c *cameraImpl) SetLayerCullSpherical(spherical bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layerCullSpherical = spherical
}

func (c *cameraImpl) LayerCullUniform() GPULayerCullUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	u := GPULayerCullUniform{Distances: c.layerCullDistances}
	if c.layerCullSpherical {
		u.Spherical = 1
	}
	return u
}

func (c *cameraImpl) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyed = true
}

func (c *cameraImpl) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}
