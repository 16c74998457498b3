// Package quality holds the engine's runtime quality settings.
package quality

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

// DefaultLODBias is the LOD bias a new settings store starts with.
const DefaultLODBias float32 = 1.0

// Settings is a thread-safe store for quality settings read by engine systems.
type Settings interface {
	// LODBias returns the current level-of-detail bias.
	//
	// Returns:
	//   - float32: the bias (>= 0)
	LODBias() float32

	// SetLODBias sets the level-of-detail bias. Negative values are clamped to 0.
	//
	// Parameters:
	//   - bias: the new bias
	SetLODBias(bias float32)
}

type settingsImpl struct {
	mu      sync.RWMutex
	lodBias float32
}

var _ Settings = &settingsImpl{}

var defaultSettings = NewSettings()

// Default returns the process-wide settings store.
//
// Returns:
//   - Settings: the shared store
func Default() Settings {
	return defaultSettings
}

// NewSettings creates an isolated settings store with any provided options applied.
//
// Parameters:
//   - opts: variadic list of SettingsBuilderOption functions
//
// Returns:
//   - Settings: the new store
func NewSettings(opts ...SettingsBuilderOption) Settings {
	s := &settingsImpl{
		lodBias: DefaultLODBias,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settingsImpl) LODBias() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lodBias
}

func (s *settingsImpl) SetLODBias(bias float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lodBias = common.AtLeast(bias, 0)
}

// SettingsBuilderOption configures a Settings store during construction.
type SettingsBuilderOption func(*settingsImpl)

// WithLODBias sets the initial LOD bias. Negative values are clamped to 0.
//
// Parameters:
//   - bias: the initial bias
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithLODBias(bias float32) SettingsBuilderOption {
	return func(s *settingsImpl) {
		s.lodBias = common.AtLeast(bias, 0)
	}
}
