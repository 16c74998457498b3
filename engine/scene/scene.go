package scene

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-cull/engine/camera"
	"github.com/Carmen-Shannon/oxy-cull/engine/culling"
	"github.com/Carmen-Shannon/oxy-cull/engine/light"
)

// Component is anything with a lifecycle tied to scene activation.
// Culling registries and adapters are components.
type Component interface {
	// OnEnable is called when the component becomes active.
	OnEnable() error

	// OnDisable is called when the component becomes inactive.
	OnDisable()
}

// Scene is the environment cameras, lights and culling registries live in.
// It drives component activation and lets adapters find the scene's culling
// registry. Scenes can be hot-swapped via SetActive to switch between levels.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active.
	Active() bool

	// SetActive activates or deactivates the scene and every component in it.
	// Activation enables registries before other components so adapters find them;
	// deactivation disables other components first so they unregister while the
	// registries are still running.
	//
	// Parameters:
	//   - active: true to activate
	//
	// Returns:
	//   - error: joined OnEnable errors, nil when deactivating
	SetActive(active bool) error

	// Add adds a component. If the scene is active the component is enabled
	// immediately. Adding a component twice is a no-op.
	//
	// Parameters:
	//   - c: the component to add
	//
	// Returns:
	//   - error: the component's OnEnable error, if it was enabled
	Add(c Component) error

	// Remove removes a component, disabling it first if the scene is active.
	//
	// Parameters:
	//   - c: the component to remove
	Remove(c Component)

	// Components returns the scene's components in insertion order.
	Components() []Component

	// Count returns the number of components in the scene.
	Count() int

	// Registries returns every culling registry in the scene. Adapters created
	// by AddCamera and AddLight use the scene as their locator.
	//
	// Returns:
	//   - []culling.Registry: the registries
	Registries() []culling.Registry

	// AddCamera adds a camera along with a culling adapter that registers it
	// while the scene is active.
	//
	// Parameters:
	//   - cam: the camera to add
	//
	// Returns:
	//   - culling.Adapter: the camera's adapter
	//   - error: the adapter's OnEnable error, if it was enabled
	AddCamera(cam camera.Camera) (culling.Adapter, error)

	// RemoveCamera removes a camera and its adapter.
	//
	// Parameters:
	//   - cam: the camera to remove
	RemoveCamera(cam camera.Camera)

	// Cameras returns the cameras added with AddCamera.
	Cameras() []camera.Camera

	// AddLight adds a light along with a culling adapter that registers it
	// while the scene is active.
	//
	// Parameters:
	//   - l: the light to add
	//
	// Returns:
	//   - culling.Adapter: the light's adapter
	//   - error: the adapter's OnEnable error, if it was enabled
	AddLight(l light.Light) (culling.Adapter, error)

	// RemoveLight removes a light and its adapter.
	//
	// Parameters:
	//   - l: the light to remove
	RemoveLight(l light.Light)

	// Lights returns the lights added with AddLight.
	Lights() []light.Light
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	components []Component

	cameraAdapters map[camera.Camera]culling.Adapter
	cameras        []camera.Camera
	lightAdapters  map[light.Light]culling.Adapter
	lights         []light.Light
}

// Ensure scene implements Scene and culling.Locator.
var (
	_ Scene           = &scene{}
	_ culling.Locator = &scene{}
)

// NewScene creates a new, inactive Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		cameraAdapters: make(map[camera.Camera]culling.Adapter),
		lightAdapters:  make(map[light.Light]culling.Adapter),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive flips the flag under the lock, then runs the component callbacks
// without it so adapters can query Registries.
func (s *scene) SetActive(active bool) error {
	s.mu.Lock()
	if s.active == active {
		s.mu.Unlock()
		return nil
	}
	s.active = active
	components := slices.Clone(s.components)
	s.mu.Unlock()

	registries, others := partition(components)
	if active {
		var errs []error
		for _, c := range append(registries, others...) {
			if err := c.OnEnable(); err != nil {
				errs = append(errs, fmt.Errorf("scene %q: %w", s.Name(), err))
			}
		}
		return errors.Join(errs...)
	}

	slices.Reverse(others)
	for _, c := range append(others, registries...) {
		c.OnDisable()
	}
	return nil
}

// partition splits components into registries and everything else, keeping order.
func partition(components []Component) (registries, others []Component) {
	for _, c := range components {
		if _, ok := c.(culling.Registry); ok {
			registries = append(registries, c)
		} else {
			others = append(others, c)
		}
	}
	return registries, others
}

func (s *scene) Add(c Component) error {
	if c == nil {
		return nil
	}
	s.mu.Lock()
	if slices.Contains(s.components, c) {
		s.mu.Unlock()
		return nil
	}
	s.components = append(s.components, c)
	active := s.active
	s.mu.Unlock()

	if active {
		return c.OnEnable()
	}
	return nil
}

func (s *scene) Remove(c Component) {
	s.mu.Lock()
	i := slices.Index(s.components, c)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.components = slices.Delete(s.components, i, i+1)
	active := s.active
	s.mu.Unlock()

	if active {
		c.OnDisable()
	}
}

func (s *scene) Components() []Component {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.components)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.components)
}

func (s *scene) Registries() []culling.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []culling.Registry
	for _, c := range s.components {
		if r, ok := c.(culling.Registry); ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *scene) AddCamera(cam camera.Camera) (culling.Adapter, error) {
	s.mu.Lock()
	if a, ok := s.cameraAdapters[cam]; ok {
		s.mu.Unlock()
		return a, nil
	}
	a := culling.NewCameraAdapter(cam, culling.WithLocator(s))
	s.cameraAdapters[cam] = a
	s.cameras = append(s.cameras, cam)
	s.mu.Unlock()

	return a, s.Add(a)
}

func (s *scene) RemoveCamera(cam camera.Camera) {
	s.mu.Lock()
	a, ok := s.cameraAdapters[cam]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.cameraAdapters, cam)
	s.cameras = slices.DeleteFunc(s.cameras, func(c camera.Camera) bool { return c == cam })
	s.mu.Unlock()

	s.Remove(a)
}

func (s *scene) Cameras() []camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cameras)
}

func (s *scene) AddLight(l light.Light) (culling.Adapter, error) {
	s.mu.Lock()
	if a, ok := s.lightAdapters[l]; ok {
		s.mu.Unlock()
		return a, nil
	}
	a := culling.NewLightAdapter(l, culling.WithLocator(s))
	s.lightAdapters[l] = a
	s.lights = append(s.lights, l)
	s.mu.Unlock()

	return a, s.Add(a)
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	a, ok := s.lightAdapters[l]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.lightAdapters, l)
	s.lights = slices.DeleteFunc(s.lights, func(other light.Light) bool { return other == l })
	s.mu.Unlock()

	s.Remove(a)
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lights)
}
