package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vk/notesmerge/internal/ingest"
	"github.com/vk/notesmerge/internal/model"
	"github.com/vk/notesmerge/internal/result"
)

// Settings is the unified, format-agnostic representation of a run's file
// layout and grading rules.
type Settings struct {
	// Separator splits fields in every input file and in the delimited report.
	Separator rune
	// Encoding is the text encoding of the input files.
	Encoding string
	// RosterFile is the roster file name, relative to the data directory.
	RosterFile string
	// GradeFilePattern is a fmt pattern with one %s verb for the course code.
	GradeFilePattern string
	// OutputFile is the report path, relative to the working directory.
	OutputFile string
	// OutputFormat is "csv" or "xlsx".
	OutputFormat string
	// Strategy is the default join strategy name.
	Strategy string
	// Courses are always tracked, before any course named on the command line.
	Courses []string
	// Profiles maps roster profile codes to track names.
	Profiles model.Profiles
	// AbsentLabel is the mention of students with no graded course.
	AbsentLabel result.Mention
	// Mentions is the ordered band table.
	Mentions result.Table
}

// Default returns the stock settings.
func Default() *Settings {
	return &Settings{
		Separator:        ingest.DefaultSeparator,
		Encoding:         "utf-8",
		RosterFile:       "liste_etudiants.csv",
		GradeFilePattern: "notes_%s.csv",
		OutputFile:       "notes_etudiants.csv",
		OutputFormat:     "csv",
		Strategy:         "hash",
		Profiles:         model.DefaultProfiles(),
		AbsentLabel:      result.MentionAbsent,
		Mentions:         result.DefaultTable(),
	}
}

// GradeFile returns the grade file name of course.
func (s *Settings) GradeFile(course string) string {
	return fmt.Sprintf(s.GradeFilePattern, course)
}

// Validate checks the settings for internal consistency.
func (s *Settings) Validate() error {
	var errs []error
	if s.Separator == 0 || s.Separator == '\n' || s.Separator == utf8.RuneError {
		errs = append(errs, fmt.Errorf("invalid separator %q", s.Separator))
	}
	if _, err := ingest.LookupEncoding(s.Encoding); err != nil {
		errs = append(errs, err)
	}
	if s.RosterFile == "" {
		errs = append(errs, errors.New("roster file name is empty"))
	}
	if strings.Count(s.GradeFilePattern, "%s") != 1 || strings.Count(s.GradeFilePattern, "%") != 1 {
		errs = append(errs, fmt.Errorf("grade file pattern %q must contain exactly one %%s", s.GradeFilePattern))
	}
	if s.OutputFile == "" {
		errs = append(errs, errors.New("output file name is empty"))
	}
	if len(s.Profiles) == 0 {
		errs = append(errs, errors.New("profile table is empty"))
	}
	for code, name := range s.Profiles {
		if code == "" || name == "" {
			errs = append(errs, fmt.Errorf("profile %q => %q must have a code and a name", code, name))
		}
	}
	for i, c := range s.Courses {
		if strings.TrimSpace(c) == "" {
			errs = append(errs, fmt.Errorf("course %d has an empty code", i+1))
		}
	}
	if err := s.Mentions.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseSeparator turns a one-character string into a separator rune.
func ParseSeparator(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("separator must be exactly one character, got %q", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return r, nil
}

// OpenBand is the bound of the last, open-ended mention band.
var OpenBand = math.Inf(1)
