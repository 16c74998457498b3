package light

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position.
	// Attenuates with distance up to a configurable range.
	LightTypePoint

	// LightTypeSpot represents a light that emits in a cone from a position along a direction.
	LightTypeSpot
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu sync.Mutex

	lightType    LightType
	lightRange   float32
	castsShadows bool

	layerShadowCullDistances common.LayerDistances

	destroyed bool
}

// Light defines the interface for a light source as seen by the culling system.
//
// Each light carries a per-layer shadow cull distance table. Shadow casters on a
// layer further than the layer's distance are skipped in the light's depth pass;
// a zero entry leaves the layer uncapped.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, point, or spot)
	Type() LightType

	// Range returns the maximum attenuation distance for point and spot lights.
	//
	// Returns:
	//   - float32: the range value
	Range() float32

	// CastsShadows returns whether this light is eligible for shadow map generation.
	//
	// Returns:
	//   - bool: true if the light casts shadows
	CastsShadows() bool

	// SetRange sets the maximum attenuation distance.
	//
	// Parameters:
	//   - lightRange: the range value
	SetRange(lightRange float32)

	// SetCastsShadows sets whether the light is eligible for shadow mapping.
	//
	// Parameters:
	//   - castsShadows: true to enable shadow casting
	SetCastsShadows(castsShadows bool)

	// LayerShadowCullDistances returns a copy of the per-layer shadow cull distance table.
	//
	// Returns:
	//   - common.LayerDistances: the shadow cull distance table
	LayerShadowCullDistances() common.LayerDistances

	// SetLayerShadowCullDistances replaces the per-layer shadow cull distance table.
	//
	// Parameters:
	//   - distances: the new shadow cull distance table
	SetLayerShadowCullDistances(distances common.LayerDistances)

	// LayerShadowCullUniform returns the GPU representation of the shadow cull table.
	//
	// Returns:
	//   - GPULayerShadowCullUniform: the uniform ready for marshaling
	LayerShadowCullUniform() GPULayerShadowCullUniform

	// Destroy marks the light as destroyed.
	Destroy()

	// Destroyed returns whether Destroy has been called.
	//
	// Returns:
	//   - bool: true if destroyed
	Destroyed() bool
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (directional, point, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:    lightType,
		lightRange:   10.0,
		castsShadows: false,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Range() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lightRange
}

func (l *lightImpl) CastsShadows() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.castsShadows
}

func (l *lightImpl) SetRange(lightRange float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lightRange = lightRange
}

func (l *lightImpl) SetCastsShadows(castsShadows bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.castsShadows = castsShadows
}

func (l *lightImpl) LayerShadowCullDistances() common.LayerDistances {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.layerShadowCullDistances
}

func (l *lightImpl) SetLayerShadowCullDistances(distances common.LayerDistances) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.layerShadowCullDistances = distances
}

func (l *lightImpl) LayerShadowCullUniform() GPULayerShadowCullUniform {
	l.mu.Lock()
	defer l.mu.Unlock()
	return GPULayerShadowCullUniform{Distances: l.layerShadowCullDistances}
}

func (l *lightImpl) Destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroyed = true
}

func (l *lightImpl) Destroyed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destroyed
}
