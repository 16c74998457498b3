package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
	assert.True(t, c.LayerCullDistances().IsZero())
	assert.False(t, c.LayerCullSpherical())
	assert.False(t, c.Destroyed())
}

func TestNewCamera_Options(t *testing.T) {
	table := common.LayerDistances{3: 45}
	c := NewCamera(
		WithNear(0.5),
		WithFar(2000),
		WithLayerCullDistances(table),
		WithLayerCullSpherical(true),
	)

	assert.Equal(t, float32(0.5), c.Near())
	assert.Equal(t, float32(2000), c.Far())
	assert.Equal(t, table, c.LayerCullDistances())
	assert.True(t, c.LayerCullSpherical())
}

func TestCamera_Setters(t *testing.T) {
	c := NewCamera()
	c.SetNear(1)
	c.SetFar(10)
	c.SetLayerCullDistances(common.LayerDistances{0: 7})
	c.SetLayerCullSpherical(true)
	c.Destroy()

	assert.Equal(t, float32(1), c.Near())
	assert.Equal(t, float32(10), c.Far())
	assert.Equal(t, float32(7), c.LayerCullDistances()[0])
	assert.True(t, c.LayerCullSpherical())
	assert.True(t, c.Destroyed())
}

func TestCamera_LayerCullDistancesIsACopy(t *testing.T) {
	c := NewCamera(WithLayerCullDistances(common.LayerDistances{0: 7}))
	d := c.LayerCullDistances()
	d[0] = 99

	assert.Equal(t, float32(7), c.LayerCullDistances()[0])
}

func TestGPULayerCullUniform_Marshal(t *testing.T) {
	c := NewCamera(
		WithLayerCullDistances(common.LayerDistances{4: 32}),
		WithLayerCullSpherical(true),
	)
	u := c.LayerCullUniform()
	buf := u.Marshal()

	assert.Equal(t, 144, u.Size())
	assert.Len(t, buf, 144)
	assert.Equal(t, float32(32), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:])))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[128:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[140:]))

	c.SetLayerCullSpherical(false)
	u = c.LayerCullUniform()
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(u.Marshal()[128:]))
}
