package culling

import (
	"log/slog"
	"slices"
	"time"
)

// RegistryBuilderOption is a functional option for configuring a Registry.
// Use the With* functions to create options.
type RegistryBuilderOption func(r *registryImpl)

// WithLayers sets the initial layer rules. NewRegistry validates them.
//
// Parameters:
//   - rules: the layer rules
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithLayers(rules ...LayerRule) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.cfg.Layers = slices.Clone(rules)
	}
}

// WithMultiplier sets the initial distance multiplier. Defaults to 1.
//
// Parameters:
//   - m: the multiplier
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithMultiplier(m float32) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.cfg.Multiplier = m
	}
}

// WithMultiplierIsLODBias makes the registry use the polled LOD bias in place of
// the configured multiplier.
//
// Parameters:
//   - enabled: true to follow the LOD bias
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithMultiplierIsLODBias(enabled bool) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.cfg.MultiplierIsLODBias = enabled
	}
}

// WithCullSpherically selects spherical distance measurement on cameras.
//
// Parameters:
//   - spherical: true for spherical culling
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithCullSpherically(spherical bool) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.cfg.CullSpherically = spherical
	}
}

// WithBiasSource sets where the LOD bias is read from. Defaults to quality.Default().
//
// Parameters:
//   - src: the bias source
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithBiasSource(src BiasSource) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.bias = src
	}
}

// WithPollInterval sets how often an active registry checks the LOD bias.
// Defaults to DefaultPollInterval; non-positive values keep the default.
//
// Parameters:
//   - d: the poll interval
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithPollInterval(d time.Duration) RegistryBuilderOption {
	return func(r *registryImpl) {
		if d > 0 {
			r.pollInterval = d
		}
	}
}

// WithPushWorkers sets the number of workers used to push tables to sinks.
// Defaults to 1. Scenes with many cameras and lights can raise it.
//
// Parameters:
//   - n: the number of push workers (minimum 1)
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithPushWorkers(n int) RegistryBuilderOption {
	return func(r *registryImpl) {
		if n < 1 {
			n = 1
		}
		r.pushWorkers = n
	}
}

// WithLogger sets the logger for this registry. Defaults to common.Logger().
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithLogger(l *slog.Logger) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.logger = l
	}
}
