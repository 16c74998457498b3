package culling

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

var (
	// ErrLayerOutOfRange is returned when a rule targets a layer outside [0, common.LayerCount).
	ErrLayerOutOfRange = errors.New("culling: layer out of range")

	// ErrDuplicateLayer is returned when two rules target the same layer.
	ErrDuplicateLayer = errors.New("culling: duplicate layer rule")

	// ErrNegativeDistance is returned when a rule has a negative base or shadow distance.
	ErrNegativeDistance = errors.New("culling: negative distance")

	// ErrConfigVersionConflict is returned by SetConfig when the submitted config was
	// derived from an older version than the registry currently holds.
	ErrConfigVersionConflict = errors.New("culling: config version conflict")

	// ErrMultipleRegistries is returned by an adapter that finds more than one registry.
	ErrMultipleRegistries = errors.New("culling: multiple registries found")
)

// LayerRule declares the culling distances for one rendering layer.
type LayerRule struct {
	// Layer is the layer index, in [0, common.LayerCount).
	Layer int

	// BaseDistance is the visible distance before the multiplier is applied.
	BaseDistance float32

	// ShadowDistance is the shadow-casting distance before the multiplier is applied.
	ShadowDistance float32
}

// Config is a versioned snapshot of a registry's culling configuration.
type Config struct {
	// CullSpherically selects spherical rather than planar distance measurement on cameras.
	CullSpherically bool

	// MultiplierIsLODBias substitutes the polled LOD bias for Multiplier.
	MultiplierIsLODBias bool

	// Multiplier scales every rule distance. Ignored while MultiplierIsLODBias is set.
	Multiplier float32

	// Layers holds at most one rule per layer.
	Layers []LayerRule

	// Version increases by one with every accepted change. A Config passed to
	// SetConfig with a non-zero Version must match the registry's current Version.
	Version uint64
}

// Clone returns a deep copy of c.
//
// Returns:
//   - Config: the copy
func (c Config) Clone() Config {
	c.Layers = slices.Clone(c.Layers)
	return c
}

// validateRule checks a single rule in isolation.
func validateRule(rule LayerRule) error {
	var errs []error
	if !common.ValidLayer(rule.Layer) {
		errs = append(errs, fmt.Errorf("layer %d: %w", rule.Layer, ErrLayerOutOfRange))
	}
	if rule.BaseDistance < 0 || rule.ShadowDistance < 0 {
		errs = append(errs, fmt.Errorf("layer %d: %w", rule.Layer, ErrNegativeDistance))
	}
	return errors.Join(errs...)
}

// ValidateLayers checks a rule set before it is applied. Every problem found is
// reported; the result wraps ErrLayerOutOfRange, ErrDuplicateLayer and
// ErrNegativeDistance as applicable.
//
// Parameters:
//   - rules: the rule set to check
//
// Returns:
//   - error: nil if the rule set is usable
func ValidateLayers(rules []LayerRule) error {
	var errs []error
	var seen [common.LayerCount]bool
	for _, rule := range rules {
		if err := validateRule(rule); err != nil {
			errs = append(errs, err)
		}
		if !common.ValidLayer(rule.Layer) {
			continue
		}
		if seen[rule.Layer] {
			errs = append(errs, fmt.Errorf("layer %d: %w", rule.Layer, ErrDuplicateLayer))
		}
		seen[rule.Layer] = true
	}
	return errors.Join(errs...)
}

// ComputeDistanceTable builds the full distance table for a rule set. Layers
// without a rule stay at zero. Rules outside the valid layer range are skipped
// and a later rule for the same layer overwrites an earlier one; neither occurs
// in a validated rule set.
//
// Parameters:
//   - rules: the layer rules
//   - multiplier: the effective multiplier applied to every distance
//
// Returns:
//   - common.DistanceTable: the computed table
func ComputeDistanceTable(rules []LayerRule, multiplier float32) common.DistanceTable {
	var base, shadow common.LayerDistances
	for _, rule := range rules {
		if !common.ValidLayer(rule.Layer) {
			continue
		}
		base[rule.Layer] = rule.BaseDistance
		shadow[rule.Layer] = rule.ShadowDistance
	}
	return common.DistanceTable{
		Visible: base.Scaled(multiplier),
		Shadow:  shadow.Scaled(multiplier),
	}
}
