package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

func TestNewLight_Defaults(t *testing.T) {
	l := NewLight(LightTypeSpot)

	assert.Equal(t, LightTypeSpot, l.Type())
	assert.Equal(t, float32(10), l.Range())
	assert.False(t, l.CastsShadows())
	assert.True(t, l.LayerShadowCullDistances().IsZero())
	assert.False(t, l.Destroyed())
}

func TestNewLight_Options(t *testing.T) {
	table := common.LayerDistances{30: 80}
	l := NewLight(LightTypePoint,
		WithRange(25),
		WithCastsShadows(true),
		WithLayerShadowCullDistances(table),
	)

	assert.Equal(t, float32(25), l.Range())
	assert.True(t, l.CastsShadows())
	assert.Equal(t, table, l.LayerShadowCullDistances())
}

func TestLight_Setters(t *testing.T) {
	l := NewLight(LightTypeDirectional)
	l.SetRange(3)
	l.SetCastsShadows(true)
	l.SetLayerShadowCullDistances(common.LayerDistances{1: 9})
	l.Destroy()

	assert.Equal(t, float32(3), l.Range())
	assert.True(t, l.CastsShadows())
	assert.Equal(t, float32(9), l.LayerShadowCullDistances()[1])
	assert.True(t, l.Destroyed())
}

func TestGPULayerShadowCullUniform_Marshal(t *testing.T) {
	l := NewLight(LightTypePoint, WithLayerShadowCullDistances(common.LayerDistances{2: 14}))
	u := l.LayerShadowCullUniform()
	buf := u.Marshal()

	assert.Equal(t, 128, u.Size())
	assert.Len(t, buf, 128)
	assert.Equal(t, float32(14), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
}
