package ingest

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrMalformedField marks a line that could not be turned into a record.
var ErrMalformedField = errors.New("malformed field")

// MissingFileError names an input file that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file %s does not exist", e.Path)
}

// Unwrap lets callers match the error with fs.ErrNotExist.
func (e *MissingFileError) Unwrap() error { return fs.ErrNotExist }

// LineError locates a malformed line.
type LineError struct {
	Path   string
	Line   int
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s", e.Path, e.Line, ErrMalformedField, e.Reason)
}

// Unwrap returns ErrMalformedField.
func (e *LineError) Unwrap() error { return ErrMalformedField }
