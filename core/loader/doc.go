// Package loader registers the HTTP features of the service and mounts their routes.
//
// A feature is anything that can put routes on a fiber.Router:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Register rejects a second feature with the same name. LoadAll mounts the enabled
// features in registration order and skips the rest with an info log. The start
// command registers the session and scenario features.
package loader
