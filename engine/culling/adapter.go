package culling

import (
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-cull/common"
)

// Adapter connects one camera or light to a Registry for as long as the adapter
// is enabled. It registers its sink on OnEnable and unregisters it on OnDisable.
//
// The registry is either injected with WithRegistry or looked up through a
// Locator on every activation. Finding no registry leaves the adapter inert with
// a warning; finding more than one is a configuration error.
type Adapter interface {
	// OnEnable resolves the registry and registers the sink.
	// Enabling an enabled adapter is a no-op.
	//
	// Returns:
	//   - error: ErrMultipleRegistries if the locator returned more than one registry
	OnEnable() error

	// OnDisable unregisters the sink from the registry captured on activation.
	// Disabling a disabled adapter is a no-op.
	OnDisable()

	// Enabled returns whether the adapter is enabled.
	Enabled() bool

	// Registry returns the registry captured on activation, or nil.
	Registry() Registry
}

type adapterImpl struct {
	mu sync.Mutex

	kind       string
	register   func(Registry)
	unregister func(Registry)

	injected Registry
	locator  Locator
	logger   *slog.Logger

	enabled  bool
	captured Registry
}

var _ Adapter = &adapterImpl{}

// NewCameraAdapter creates an Adapter that registers cam as a camera.
//
// Parameters:
//   - cam: the camera to register
//   - opts: variadic list of AdapterBuilderOption functions
//
// Returns:
//   - Adapter: the new adapter
func NewCameraAdapter(cam CameraSink, opts ...AdapterBuilderOption) Adapter {
	return newAdapter("camera",
		func(r Registry) { r.RegisterCamera(cam) },
		func(r Registry) { r.UnregisterCamera(cam) },
		opts...)
}

// NewLightAdapter creates an Adapter that registers l as a light.
//
// Parameters:
//   - l: the light to register
//   - opts: variadic list of AdapterBuilderOption functions
//
// Returns:
//   - Adapter: the new adapter
func NewLightAdapter(l LightSink, opts ...AdapterBuilderOption) Adapter {
	return newAdapter("light",
		func(r Registry) { r.RegisterLight(l) },
		func(r Registry) { r.UnregisterLight(l) },
		opts...)
}

func newAdapter(kind string, register, unregister func(Registry), opts ...AdapterBuilderOption) *adapterImpl {
	a := &adapterImpl{
		kind:       kind,
		register:   register,
		unregister: unregister,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *adapterImpl) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return common.Logger()
}

func (a *adapterImpl) OnEnable() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.enabled {
		return nil
	}
	a.enabled = true

	r, err := a.resolve()
	if err != nil {
		a.log().Warn("culling: adapter left inert", "sink", a.kind, "error", err)
		return err
	}
	if r == nil {
		a.log().Warn("culling: no culling registry found", "sink", a.kind)
		return nil
	}
	a.captured = r
	a.register(r)
	return nil
}

// resolve returns the injected registry or the single registry the locator knows.
func (a *adapterImpl) resolve() (Registry, error) {
	if a.injected != nil {
		return a.injected, nil
	}
	if a.locator == nil {
		return nil, nil
	}
	found := a.locator.Registries()
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, ErrMultipleRegistries
	}
}

func (a *adapterImpl) OnDisable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return
	}
	a.enabled = false

	if a.captured == nil {
		a.log().Warn("culling: no culling registry found", "sink", a.kind)
		return
	}
	a.unregister(a.captured)
	a.captured = nil
}

func (a *adapterImpl) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

func (a *adapterImpl) Registry() Registry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.captured
}

// AdapterBuilderOption is a functional option for configuring an Adapter.
type AdapterBuilderOption func(a *adapterImpl)

// WithRegistry injects the registry the adapter registers with. An injected
// registry takes precedence over a locator.
//
// Parameters:
//   - r: the registry
//
// Returns:
//   - AdapterBuilderOption: option function to apply
func WithRegistry(r Registry) AdapterBuilderOption {
	return func(a *adapterImpl) {
		a.injected = r
	}
}

// WithLocator sets the locator queried for a registry on every activation.
//
// Parameters:
//   - loc: the locator, typically the owning scene
//
// Returns:
//   - AdapterBuilderOption: option function to apply
func WithLocator(loc Locator) AdapterBuilderOption {
	return func(a *adapterImpl) {
		a.locator = loc
	}
}

// WithAdapterLogger sets the logger for this adapter. Defaults to common.Logger().
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - AdapterBuilderOption: option function to apply
func WithAdapterLogger(l *slog.Logger) AdapterBuilderOption {
	return func(a *adapterImpl) {
		a.logger = l
	}
}
