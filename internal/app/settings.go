package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vk/notesmerge/internal/config"
	"github.com/vk/notesmerge/internal/ctxlog"
)

// loadSettings resolves the settings of a run: defaults, then the settings
// file, then the non-empty overrides of the app config.
func (a *App) loadSettings(ctx context.Context) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)

	path := a.config.ConfigPath
	explicit := path != ""
	if !explicit {
		path = filepath.Join(a.config.DataDir, DefaultSettingsFile)
	}

	settings := config.Default()
	_, statErr := os.Stat(path)
	switch {
	case explicit || statErr == nil:
		loaded, err := a.loader.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
		logger.Debug("Settings file loaded.", "path", path)
	case errors.Is(statErr, fs.ErrNotExist):
		logger.Debug("No settings file found, using defaults.", "path", path)
	default:
		return nil, fmt.Errorf("error accessing settings file %s: %w", path, statErr)
	}

	if a.config.Separator != "" {
		sep, err := config.ParseSeparator(a.config.Separator)
		if err != nil {
			return nil, err
		}
		settings.Separator = sep
	}
	if a.config.Encoding != "" {
		settings.Encoding = a.config.Encoding
	}
	if a.config.Strategy != "" {
		settings.Strategy = a.config.Strategy
	}
	if a.config.Output != "" {
		settings.OutputFile = a.config.Output
	}
	if a.config.Format != "" {
		settings.OutputFormat = a.config.Format
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// resolveCourses returns the tracked courses: configured first, then each
// requested list in order, without duplicates.
func resolveCourses(configured []string, requested ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(list []string) {
		for _, c := range list {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	add(configured)
	for _, list := range requested {
		add(list)
	}
	return out
}
