package culling

import "github.com/Carmen-Shannon/oxy-cull/common"

// CameraSink is a camera that performs its own per-layer distance culling from a
// pushed distance table. engine/camera.Camera satisfies it.
type CameraSink interface {
	// SetLayerCullDistances replaces the camera's per-layer visible distance table.
	SetLayerCullDistances(distances common.LayerDistances)

	// SetLayerCullSpherical selects spherical or planar distance measurement.
	SetLayerCullSpherical(spherical bool)
}

// LightSink is a light that culls shadow casters per layer from a pushed distance
// table. engine/light.Light satisfies it.
type LightSink interface {
	// SetLayerShadowCullDistances replaces the light's per-layer shadow distance table.
	SetLayerShadowCullDistances(distances common.LayerDistances)
}

// BiasSource exposes the externally controlled LOD bias. engine/quality.Settings
// satisfies it.
type BiasSource interface {
	LODBias() float32
}

// Locator finds the registries available to an adapter at activation time.
// engine/scene.Scene satisfies it.
type Locator interface {
	Registries() []Registry
}

// destroyable is implemented by sinks whose owner can destroy them while they are
// still registered. Destroyed sinks are dropped instead of written to.
type destroyable interface {
	Destroyed() bool
}

// isDestroyed reports whether a sink has been destroyed by its owner.
func isDestroyed(sink any) bool {
	d, ok := sink.(destroyable)
	return ok && d.Destroyed()
}
