package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// CheckExists returns a *MissingFileError for the first path that is absent.
func CheckExists(paths ...string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &MissingFileError{Path: p}
			}
			return fmt.Errorf("error accessing %s: %w", p, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory, not a file", p)
		}
	}
	return nil
}

// eachLine opens path and calls fn with the 1-based number and fields of every
// non-blank line. The file is closed on every return path.
func eachLine(path string, opts Options, fn func(line int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingFileError{Path: path}
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return scan(path, f, opts, fn)
}

func scan(path string, r io.Reader, opts Options, fn func(line int, fields []string) error) error {
	decoded, err := opts.decode(r)
	if err != nil {
		return err
	}

	sep := opts.separator()
	scanner := bufio.NewScanner(decoded)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := fn(n, strings.Split(text, sep)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
