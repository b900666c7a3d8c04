package ingest

import (
	"fmt"
	"strings"

	"github.com/vk/notesmerge/internal/model"
)

// NameSeparator splits the name field into last and first name.
const NameSeparator = "- "

const rosterFields = 4

// ReadRoster parses the roster at path. Every student tracks courses, all
// ungraded. Unknown profile codes are rejected against profiles.
func ReadRoster(path string, opts Options, profiles model.Profiles, courses []string) (model.Roster, error) {
	var roster model.Roster
	err := eachLine(path, opts, func(line int, fields []string) error {
		s, reason := parseStudent(fields, profiles)
		if reason != "" {
			return &LineError{Path: path, Line: line, Reason: reason}
		}
		s.Grades = model.NewGrades(courses)
		roster = append(roster, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return roster, nil
}

func parseStudent(fields []string, profiles model.Profiles) (model.Student, string) {
	if len(fields) != rosterFields {
		return model.Student{}, fmt.Sprintf("expected %d fields, got %d", rosterFields, len(fields))
	}
	if fields[0] == "" {
		return model.Student{}, "empty identifier"
	}
	last, first, ok := strings.Cut(fields[1], NameSeparator)
	if !ok {
		return model.Student{}, fmt.Sprintf("name %q lacks the %q separator", fields[1], NameSeparator)
	}
	track, err := profiles.Track(fields[2])
	if err != nil {
		return model.Student{}, err.Error()
	}
	return model.Student{
		ID:        fields[0],
		LastName:  last,
		FirstName: first,
		Track:     track,
		Group:     fields[3],
	}, ""
}
