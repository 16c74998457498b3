package light

import "github.com/Carmen-Shannon/oxy-cull/common"

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithRange is an option builder that sets the maximum attenuation distance for
// point and spot lights.
//
// Parameters:
//   - lightRange: the range value
//
// Returns:
//   - LightBuilderOption: a function that applies the range option to a lightImpl
func WithRange(lightRange float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightRange = lightRange
	}
}

// WithCastsShadows is an option builder that sets whether the light is eligible for
// shadow map generation.
//
// Parameters:
//   - castsShadows: true to enable shadow casting
//
// Returns:
//   - LightBuilderOption: a function that applies the shadow casting option to a lightImpl
func WithCastsShadows(castsShadows bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.castsShadows = castsShadows
	}
}

// WithLayerShadowCullDistances is an option builder that sets the initial per-layer
// shadow cull distance table.
//
// Parameters:
//   - distances: the shadow cull distance table
//
// Returns:
//   - LightBuilderOption: a function that applies the table to a lightImpl
func WithLayerShadowCullDistances(distances common.LayerDistances) LightBuilderOption {
	return func(l *lightImpl) {
		l.layerShadowCullDistances = distances
	}
}
