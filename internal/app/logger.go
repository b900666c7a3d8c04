package app

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds the isolated logger of one run. Every record it emits carries
// the run id. An empty level means info and an empty format means text.
func newLogger(levelStr, formatStr, runID string, outW io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if levelStr != "" {
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch formatStr {
	case "json":
		handler = slog.NewJSONHandler(outW, handlerOpts)
	case "text", "":
		handler = slog.NewTextHandler(outW, handlerOpts)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", formatStr)
	}

	return slog.New(handler.WithAttrs([]slog.Attr{slog.String("run_id", runID)})), nil
}
