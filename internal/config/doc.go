// Package config defines the format-agnostic settings model of a notesmerge run,
// along with the Loader interface for reading settings from a file.
//
// The `config.Settings` value is the single source of truth for file layout,
// separators, tracked courses, profiles and mention bands. Concrete loaders, such
// as the HCL one, live in separate packages.
package config
