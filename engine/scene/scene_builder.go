package scene

import "slices"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithComponents adds initial components to the scene. They are enabled on the
// first SetActive(true). Duplicates are ignored.
//
// Parameters:
//   - components: the components to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComponents(components ...Component) SceneBuilderOption {
	return func(s *scene) {
		for _, c := range components {
			if c == nil || slices.Contains(s.components, c) {
				continue
			}
			s.components = append(s.components, c)
		}
	}
}
