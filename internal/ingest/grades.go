package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vk/notesmerge/internal/model"
)

const gradeFields = 2

// ReadGrades parses the grade file at path, keeping file order.
func ReadGrades(path string, opts Options) ([]model.GradeEntry, error) {
	var entries []model.GradeEntry
	err := eachLine(path, opts, func(line int, fields []string) error {
		e, reason := parseEntry(fields)
		if reason != "" {
			return &LineError{Path: path, Line: line, Reason: reason}
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func parseEntry(fields []string) (model.GradeEntry, string) {
	if len(fields) != gradeFields {
		return model.GradeEntry{}, fmt.Sprintf("expected %d fields, got %d", gradeFields, len(fields))
	}
	if fields[0] == "" {
		return model.GradeEntry{}, "empty identifier"
	}
	raw := strings.TrimSpace(fields[1])
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return model.GradeEntry{}, fmt.Sprintf("score %q is not a finite number", raw)
	}
	return model.GradeEntry{ID: fields[0], Score: score}, ""
}
