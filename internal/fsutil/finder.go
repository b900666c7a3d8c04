// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// FindGradeFiles lists the regular files of dir matching pattern, a file name
// with a single %s verb, and returns the course codes the verb stands for,
// sorted. Subdirectories are not searched.
func FindGradeFiles(dir string, pattern string) ([]string, error) {
	prefix, suffix, ok := strings.Cut(pattern, "%s")
	if !ok {
		panic("pattern must contain %s")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var courses []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if len(name) <= len(prefix)+len(suffix) ||
			!strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		courses = append(courses, name[len(prefix):len(name)-len(suffix)])
	}
	slices.Sort(courses)
	return courses, nil
}
