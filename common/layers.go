package common

import (
	"encoding/binary"
	"math"
)

// LayerCount is the number of rendering layers a camera or light can cull against.
// Layer ids are the integers 0 through LayerCount-1.
const LayerCount = 32

// LayerDistancesSize is the size in bytes of a marshaled LayerDistances array.
const LayerDistancesSize = LayerCount * 4

// LayerDistances holds one culling distance per rendering layer.
// A zero entry means the layer has no distance cap for the sink that holds it.
type LayerDistances [LayerCount]float32

// DistanceTable is the derived per-layer culling table pushed to cameras and lights.
// It is always rebuilt in full from the current layer rules and multiplier and is
// never patched incrementally.
type DistanceTable struct {
	// Visible is the maximum render distance per layer, consumed by cameras.
	Visible LayerDistances

	// Shadow is the maximum shadow-casting distance per layer, consumed by lights.
	Shadow LayerDistances
}

// ValidLayer reports whether layer is a usable layer index.
//
// Parameters:
//   - layer: the layer index to check
//
// Returns:
//   - bool: true if 0 <= layer < LayerCount
func ValidLayer(layer int) bool {
	return layer >= 0 && layer < LayerCount
}

// IsZero reports whether every layer in d is uncapped.
//
// Returns:
//   - bool: true if all entries are zero
func (d LayerDistances) IsZero() bool {
	return d == LayerDistances{}
}

// Scaled returns a copy of d with every entry multiplied by m.
//
// Parameters:
//   - m: the multiplier to apply
//
// Returns:
//   - LayerDistances: the scaled copy
func (d LayerDistances) Scaled(m float32) LayerDistances {
	for i := range d {
		d[i] *= m
	}
	return d
}

// Marshal serializes the distances as 32 little-endian float32 values, matching a
// WGSL array<f32, 32> in a storage or uniform buffer.
//
// Returns:
//   - []byte: LayerDistancesSize bytes ready for GPU upload
func (d LayerDistances) Marshal() []byte {
	buf := make([]byte, LayerDistancesSize)
	d.MarshalInto(buf)
	return buf
}

// MarshalInto writes the distances into buf, which must be at least
// LayerDistancesSize bytes long.
//
// Parameters:
//   - buf: destination buffer
func (d LayerDistances) MarshalInto(buf []byte) {
	for i := range LayerCount {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(d[i]))
	}
}
