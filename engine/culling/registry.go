// Package culling propagates per-layer distance culling settings to the engine's
// cameras and lights.
//
// A Registry owns the layer rules and global multiplier. Cameras and lights are
// registered with it, usually through a camera or light Adapter driven by scene
// activation, and receive a freshly computed distance table whenever the
// configuration or the set of registered sinks changes. When the multiplier is
// tied to the LOD bias, the registry polls the bias source on a ticker and
// refreshes when the value drifts.
package culling

import (
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-cull/common"
	"github.com/Carmen-Shannon/oxy-cull/engine/quality"
)

// DefaultPollInterval is how often an active registry checks the LOD bias.
const DefaultPollInterval = time.Second

// DefaultMultiplier is the multiplier a registry starts with.
const DefaultMultiplier float32 = 1.0

// Registry owns the layer culling configuration and pushes distance tables to
// every registered camera and light. Safe for concurrent use.
type Registry interface {
	// RegisterCamera adds a camera and refreshes. Registering a camera that is
	// already present is a no-op. A nil camera is logged and ignored.
	//
	// Parameters:
	//   - c: the camera to register
	RegisterCamera(c CameraSink)

	// RegisterLight adds a light and refreshes. Registering a light that is
	// already present is a no-op. A nil light is logged and ignored.
	//
	// Parameters:
	//   - l: the light to register
	RegisterLight(l LightSink)

	// UnregisterCamera removes a camera and resets its distance table to all-zero.
	// Other sinks are left untouched. Unregistering an absent camera is a no-op.
	//
	// Parameters:
	//   - c: the camera to unregister
	UnregisterCamera(c CameraSink)

	// UnregisterLight removes a light and resets its shadow distance table to all-zero.
	// Other sinks are left untouched. Unregistering an absent light is a no-op.
	//
	// Parameters:
	//   - l: the light to unregister
	UnregisterLight(l LightSink)

	// Refresh recomputes the distance table and pushes it to every registered sink.
	// With no layer rules configured it logs a warning and pushes nothing, so sinks
	// keep their last table.
	Refresh()

	// Config returns a copy of the current configuration.
	//
	// Returns:
	//   - Config: the configuration snapshot
	Config() Config

	// SetConfig replaces the whole configuration and refreshes. The layer rules are
	// validated first and a non-zero cfg.Version must equal the current version.
	//
	// Parameters:
	//   - cfg: the new configuration
	//
	// Returns:
	//   - error: validation or version error; the configuration is unchanged on error
	SetConfig(cfg Config) error

	// Layers returns a copy of the layer rules.
	//
	// Returns:
	//   - []LayerRule: the rules
	Layers() []LayerRule

	// SetLayers replaces the layer rules and refreshes.
	//
	// Parameters:
	//   - rules: the new rules
	//
	// Returns:
	//   - error: validation error; the rules are unchanged on error
	SetLayers(rules []LayerRule) error

	// SetLayer inserts a rule, or replaces the existing rule for the same layer, and refreshes.
	//
	// Parameters:
	//   - rule: the rule to set
	//
	// Returns:
	//   - error: validation error; the rules are unchanged on error
	SetLayer(rule LayerRule) error

	// RemoveLayer deletes the rule for a layer and refreshes. Removing a layer
	// without a rule is a no-op.
	//
	// Parameters:
	//   - layer: the layer whose rule is removed
	RemoveLayer(layer int)

	// Multiplier returns the configured multiplier.
	Multiplier() float32

	// SetMultiplier sets the configured multiplier and refreshes.
	//
	// Parameters:
	//   - m: the multiplier
	SetMultiplier(m float32)

	// MultiplierIsLODBias returns whether the LOD bias replaces the multiplier.
	MultiplierIsLODBias() bool

	// SetMultiplierIsLODBias selects the LOD bias or the configured multiplier and refreshes.
	//
	// Parameters:
	//   - enabled: true to use the LOD bias
	SetMultiplierIsLODBias(enabled bool)

	// CullSpherically returns whether cameras measure spherical distance.
	CullSpherically() bool

	// SetCullSpherically sets the camera distance mode and refreshes.
	//
	// Parameters:
	//   - spherical: true for spherical culling
	SetCullSpherically(spherical bool)

	// EffectiveMultiplier returns the multiplier the next refresh would use.
	//
	// Returns:
	//   - float32: the LOD bias or the configured multiplier
	EffectiveMultiplier() float32

	// DistanceTable returns the table the next refresh would push.
	//
	// Returns:
	//   - common.DistanceTable: the computed table
	DistanceTable() common.DistanceTable

	// Cameras returns the registered cameras in registration order.
	Cameras() []CameraSink

	// Lights returns the registered lights in registration order.
	Lights() []LightSink

	// OnEnable activates the registry and starts the LOD bias poller and the push pool.
	// An inactive registry pushes through a short-lived pool per refresh instead.
	// Enabling an active registry is a no-op.
	//
	// Returns:
	//   - error: always nil; present to satisfy scene components
	OnEnable() error

	// OnDisable stops the push pool and the LOD bias poller, and waits for the poller to exit.
	// Disabling an inactive registry is a no-op.
	OnDisable()

	// Active returns whether the registry is enabled.
	Active() bool
}

type registryImpl struct {
	mu *sync.Mutex

	cfg          Config
	bias         BiasSource
	logger       *slog.Logger
	pollInterval time.Duration

	cameras   []CameraSink
	cameraSet map[CameraSink]struct{}
	lights    []LightSink
	lightSet  map[LightSink]struct{}

	// pushPool fans table pushes out across sinks while the registry is active.
	// Refresh waits on a WaitGroup so it returns only after every sink has its table.
	pushPool    worker.DynamicWorkerPool
	pooled      bool
	pushWorkers int

	active   bool
	lastBias float32
	quit     chan struct{}
	pollDone chan struct{}
}

var _ Registry = &registryImpl{}

// NewRegistry creates a Registry with the provided options applied. The registry
// starts inactive; call OnEnable (or add it to an active scene) to start polling.
//
// Parameters:
//   - opts: variadic list of RegistryBuilderOption functions
//
// Returns:
//   - Registry: the new registry
//   - error: validation error from WithLayers
func NewRegistry(opts ...RegistryBuilderOption) (Registry, error) {
	r := &registryImpl{
		mu: &sync.Mutex{},
		cfg: Config{
			Multiplier: DefaultMultiplier,
			Version:    1,
		},
		cameraSet:   make(map[CameraSink]struct{}),
		lightSet:    make(map[LightSink]struct{}),
		pushWorkers: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := ValidateLayers(r.cfg.Layers); err != nil {
		return nil, err
	}
	if r.bias == nil {
		r.bias = quality.Default()
	}
	r.pollInterval = common.Coalesce(r.pollInterval, DefaultPollInterval)
	return r, nil
}

// newPushPool starts a pool of pushWorkers workers. The caller owns it and must Stop it.
func (r *registryImpl) newPushPool() worker.DynamicWorkerPool {
	return worker.NewDynamicWorkerPool(r.pushWorkers, 256, 1*time.Second)
}

// hashable reports whether a non-nil sink can be tracked in the registry's sets.
func hashable(sink any) bool {
	return reflect.TypeOf(sink).Comparable()
}

func (r *registryImpl) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return common.Logger()
}

func (r *registryImpl) RegisterCamera(c CameraSink) {
	if c == nil {
		r.log().Warn("culling: ignoring nil camera registration")
		return
	}
	if !hashable(c) {
		r.log().Warn("culling: ignoring camera of non-comparable type", "type", reflect.TypeOf(c).String())
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cameraSet[c]; ok {
		return
	}
	r.cameraSet[c] = struct{}{}
	r.cameras = append(r.cameras, c)
	r.refreshLocked()
}

func (r *registryImpl) RegisterLight(l LightSink) {
	if l == nil {
		r.log().Warn("culling: ignoring nil light registration")
		return
	}
	if !hashable(l) {
		r.log().Warn("culling: ignoring light of non-comparable type", "type", reflect.TypeOf(l).String())
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lightSet[l]; ok {
		return
	}
	r.lightSet[l] = struct{}{}
	r.lights = append(r.lights, l)
	r.refreshLocked()
}

func (r *registryImpl) UnregisterCamera(c CameraSink) {
	if c == nil {
		return
	}
	if !hashable(c) {
		r.log().Warn("culling: ignoring camera of non-comparable type", "type", reflect.TypeOf(c).String())
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.removeCameraLocked(c) {
		return
	}
	c.SetLayerCullDistances(common.LayerDistances{})
}

func (r *registryImpl) UnregisterLight(l LightSink) {
	if l == nil {
		return
	}
	if !hashable(l) {
		r.log().Warn("culling: ignoring light of non-comparable type", "type", reflect.TypeOf(l).String())
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.removeLightLocked(l) {
		return
	}
	l.SetLayerShadowCullDistances(common.LayerDistances{})
}

// removeCameraLocked drops c from the camera set. Caller must hold the mutex.
func (r *registryImpl) removeCameraLocked(c CameraSink) bool {
	if _, ok := r.cameraSet[c]; !ok {
		return false
	}
	delete(r.cameraSet, c)
	r.cameras = slices.DeleteFunc(r.cameras, func(other CameraSink) bool { return other == c })
	return true
}

// removeLightLocked drops l from the light set. Caller must hold the mutex.
func (r *registryImpl) removeLightLocked(l LightSink) bool {
	if _, ok := r.lightSet[l]; !ok {
		return false
	}
	delete(r.lightSet, l)
	r.lights = slices.DeleteFunc(r.lights, func(other LightSink) bool { return other == l })
	return true
}

func (r *registryImpl) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshLocked()
}

// refreshLocked recomputes the distance table and pushes it to every live sink.
// Destroyed sinks are pruned first. Caller must hold the mutex.
func (r *registryImpl) refreshLocked() {
	if len(r.cfg.Layers) == 0 {
		r.log().Warn("culling: refresh skipped, no layers set",
			"cameras", len(r.cameras), "lights", len(r.lights))
		return
	}

	r.pruneDestroyedLocked()

	multiplier := r.effectiveMultiplierLocked()
	table := ComputeDistanceTable(r.cfg.Layers, multiplier)
	spherical := r.cfg.CullSpherically

	pool := r.pushPool
	if !r.pooled {
		pool = r.newPushPool()
		defer pool.Stop()
	}

	var wg sync.WaitGroup
	taskID := 0
	for _, c := range r.cameras {
		wg.Add(1)
		cam := c
		id := taskID
		taskID++
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				cam.SetLayerCullDistances(table.Visible)
				cam.SetLayerCullSpherical(spherical)
				return nil, nil
			},
		})
	}
	for _, l := range r.lights {
		wg.Add(1)
		lgt := l
		id := taskID
		taskID++
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				lgt.SetLayerShadowCullDistances(table.Shadow)
				return nil, nil
			},
		})
	}
	wg.Wait()

	r.log().Debug("culling: refreshed",
		"version", r.cfg.Version,
		"multiplier", multiplier,
		"layers", len(r.cfg.Layers),
		"cameras", len(r.cameras),
		"lights", len(r.lights))
}

// pruneDestroyedLocked unregisters sinks whose owner destroyed them without
// unregistering. Caller must hold the mutex.
func (r *registryImpl) pruneDestroyedLocked() {
	for _, c := range slices.Clone(r.cameras) {
		if isDestroyed(c) {
			r.removeCameraLocked(c)
			r.log().Warn("culling: dropping destroyed camera")
		}
	}
	for _, l := range slices.Clone(r.lights) {
		if isDestroyed(l) {
			r.removeLightLocked(l)
			r.log().Warn("culling: dropping destroyed light")
		}
	}
}

func (r *registryImpl) effectiveMultiplierLocked() float32 {
	if r.cfg.MultiplierIsLODBias {
		return r.bias.LODBias()
	}
	return r.cfg.Multiplier
}

// commitLocked records an accepted configuration change and refreshes.
// Caller must hold the mutex.
func (r *registryImpl) commitLocked() {
	r.cfg.Version++
	r.refreshLocked()
}

func (r *registryImpl) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg.Clone()
}

func (r *registryImpl) SetConfig(cfg Config) error {
	if err := ValidateLayers(cfg.Layers); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if cfg.Version != 0 && cfg.Version != r.cfg.Version {
		return ErrConfigVersionConflict
	}
	version := r.cfg.Version
	r.cfg = cfg.Clone()
	r.cfg.Version = version
	r.commitLocked()
	return nil
}

func (r *registryImpl) Layers() []LayerRule {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.cfg.Layers)
}

func (r *registryImpl) SetLayers(rules []LayerRule) error {
	if err := ValidateLayers(rules); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.Layers = slices.Clone(rules)
	r.commitLocked()
	return nil
}

func (r *registryImpl) SetLayer(rule LayerRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.cfg.Layers, func(lr LayerRule) bool { return lr.Layer == rule.Layer })
	if i >= 0 {
		r.cfg.Layers[i] = rule
	} else {
		r.cfg.Layers = append(r.cfg.Layers, rule)
	}
	r.commitLocked()
	return nil
}

func (r *registryImpl) RemoveLayer(layer int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.cfg.Layers, func(lr LayerRule) bool { return lr.Layer == layer })
	if i < 0 {
		return
	}
	r.cfg.Layers = slices.Delete(r.cfg.Layers, i, i+1)
	r.commitLocked()
}

func (r *registryImpl) Multiplier() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg.Multiplier
}

func (r *registryImpl) SetMultiplier(m float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.Multiplier = m
	r.commitLocked()
}

func (r *registryImpl) MultiplierIsLODBias() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg.MultiplierIsLODBias
}

func (r *registryImpl) SetMultiplierIsLODBias(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.MultiplierIsLODBias = enabled
	r.commitLocked()
}

func (r *registryImpl) CullSpherically() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg.CullSpherically
}

func (r *registryImpl) SetCullSpherically(spherical bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.CullSpherically = spherical
	r.commitLocked()
}

func (r *registryImpl) EffectiveMultiplier() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.effectiveMultiplierLocked()
}

func (r *registryImpl) DistanceTable() common.DistanceTable {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ComputeDistanceTable(r.cfg.Layers, r.effectiveMultiplierLocked())
}

func (r *registryImpl) Cameras() []CameraSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.cameras)
}

func (r *registryImpl) Lights() []LightSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.lights)
}

func (r *registryImpl) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *registryImpl) OnEnable() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active {
		return nil
	}
	r.active = true
	r.lastBias = r.bias.LODBias()
	r.pushPool = r.newPushPool()
	r.pooled = true
	r.quit = make(chan struct{})
	r.pollDone = make(chan struct{})

	go r.handlePoll(r.quit, r.pollDone, r.pollInterval)
	return nil
}

func (r *registryImpl) OnDisable() {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return
	}
	r.active = false
	close(r.quit)
	done := r.pollDone
	r.pushPool.Stop()
	r.pooled = false
	r.mu.Unlock()

	<-done
}

// handlePoll runs the LOD bias poller until quit is closed, then closes done.
func (r *registryImpl) handlePoll(quit <-chan struct{}, done chan<- struct{}, interval time.Duration) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			r.pollExternalBias()
		}
	}
}

// pollExternalBias compares the last observed LOD bias with the current one and
// refreshes when the multiplier follows the bias and the value changed. The
// current value always becomes the new baseline.
func (r *registryImpl) pollExternalBias() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return
	}
	current := r.bias.LODBias()
	changed := current != r.lastBias
	r.lastBias = current
	if changed && r.cfg.MultiplierIsLODBias {
		r.log().Debug("culling: LOD bias changed", "bias", current)
		r.refreshLocked()
	}
}
