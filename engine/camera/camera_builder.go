package camera

import "github.com/Carmen-Shannon/oxy-cull/common"

type CameraBuilderOption func(*cameraImpl)

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithLayerCullDistances sets the initial per-layer cull distance table.
//
// Parameters:
//   - distances: the cull distance table
//
// Returns:
//   - CameraBuilderOption: functional option to set the table
func WithLayerCullDistances(distances common.LayerDistances) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.layerCullDistances = distances
	}
}

// WithLayerCullSpherical selects spherical layer culling from construction.
//
// Parameters:
//   - spherical: true for spherical culling
//
// Returns:
//   - CameraBuilderOption: functional option to set the culling mode
func WithLayerCullSpherical(spherical bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.layerCullSpherical = spherical
	}
}
