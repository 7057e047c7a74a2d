// Package loader provides the plugin-like feature loading system used by serve mode.
//
// Each feature implements the Feature interface, which defines its lifecycle hooks
// and route registration logic.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry of features. Register adds one, LoadAll loads
// every enabled feature into a Fiber router.
package loader
