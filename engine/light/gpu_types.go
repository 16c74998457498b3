package light

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

// GPULayerShadowCullUniform is the GPU-aligned representation of a light's per-layer
// shadow cull distances, read by the shadow depth pass.
// Size: 128 bytes (std430 / WGSL aligned).
type GPULayerShadowCullUniform struct {
	Distances common.LayerDistances // offset 0: per-layer shadow cull distance, 0 = uncapped
}

// Size returns the size of the GPULayerShadowCullUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPULayerShadowCullUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULayerShadowCullUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload
func (g *GPULayerShadowCullUniform) Marshal() []byte {
	return g.Distances.Marshal()
}
