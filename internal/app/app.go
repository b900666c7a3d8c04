package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/notesmerge/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Each instance gets its
// own logger, tagged with a fresh run id.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, uuid.NewString(), outW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}, nil
}
