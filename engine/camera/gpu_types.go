package camera

import (
	"encoding/binary"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

// GPULayerCullUniform is the GPU-aligned representation of a camera's layer culling state.
// Size: 144 bytes (std430 / WGSL aligned).
type GPULayerCullUniform struct {
	Distances common.LayerDistances // offset   0: per-layer cull distance, 0 = uncapped
	Spherical uint32                // offset 128: 1 = spherical, 0 = planar
	_pad      [3]uint32             // offset 132: padding to 144 bytes
}

// Size returns the size of the GPULayerCullUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPULayerCullUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULayerCullUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPULayerCullUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.Distances.MarshalInto(buf)
	binary.LittleEndian.PutUint32(buf[common.LayerDistancesSize:], g.Spherical)
	return buf
}
