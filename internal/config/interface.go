package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and overlays it onto the defaults.
	Load(ctx context.Context, path string) (*Settings, error)
}
