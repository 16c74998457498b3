package culling

import (
	"bytes"
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

// mockCamera records every table pushed to it.
type mockCamera struct {
	mu        sync.Mutex
	distances common.LayerDistances
	spherical bool
	pushes    int
	destroyed bool
}

func (m *mockCamera) SetLayerCullDistances(d common.LayerDistances) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.distances = d
	m.pushes++
}

func (m *mockCamera) SetLayerCullSpherical(spherical bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spherical = spherical
}

func (m *mockCamera) Destroyed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

func (m *mockCamera) destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed = true
}

func (m *mockCamera) snapshot() (common.LayerDistances, bool, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.distances, m.spherical, m.pushes
}

func (m *mockCamera) pushCount() int {
	_, _, n := m.snapshot()
	return n
}

// mockLight records every shadow table pushed to it.
type mockLight struct {
	mu        sync.Mutex
	distances common.LayerDistances
	pushes    int
}

func (m *mockLight) SetLayerShadowCullDistances(d common.LayerDistances) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.distances = d
	m.pushes++
}

func (m *mockLight) snapshot() (common.LayerDistances, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.distances, m.pushes
}

// mockBias is a settable LOD bias source.
type mockBias struct {
	mu   sync.Mutex
	bias float32
}

func (m *mockBias) LODBias() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bias
}

func (m *mockBias) set(v float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bias = v
}

// fakeLocator returns a fixed registry list.
type fakeLocator struct {
	registries []Registry
}

func (f *fakeLocator) Registries() []Registry {
	return f.registries
}

// newBufferLogger returns a debug-level logger writing into the returned buffer.
// Only use it where logging happens on the test goroutine.
func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// distancesWith builds a table with the given layer -> distance entries.
func distancesWith(entries map[int]float32) common.LayerDistances {
	var d common.LayerDistances
	for layer, v := range entries {
		d[layer] = v
	}
	return d
}

// valueCamera is a sink whose dynamic type cannot be used as a map key.
type valueCamera struct {
	tags []string
}

func (valueCamera) SetLayerCullDistances(common.LayerDistances) {}

func (valueCamera) SetLayerCullSpherical(bool) {}

// valueLight is a sink whose dynamic type cannot be used as a map key.
type valueLight struct {
	tags []string
}

func (valueLight) SetLayerShadowCullDistances(common.LayerDistances) {}
