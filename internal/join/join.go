package join

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vk/notesmerge/internal/model"
)

var (
	// ErrNotFound reports a grade entry whose identifier the strategy could not
	// locate in the roster.
	ErrNotFound = errors.New("identifier not found in roster")

	// ErrUnsorted reports a roster or entry list that is not in ascending
	// identifier order while the strategy requires it.
	ErrUnsorted = errors.New("input is not sorted by identifier")

	// ErrUnknownStrategy is returned by ByName for unregistered names.
	ErrUnknownStrategy = errors.New("unknown join strategy")
)

// Strategy merges one course's grade entries into a roster in place.
type Strategy interface {
	// Name returns the strategy's registry name.
	Name() string

	// Apply sets roster[i].Grades[course] for every student matched by an entry.
	Apply(course string, roster model.Roster, entries []model.GradeEntry) error

	// NeedsSortedRoster reports whether Apply expects the roster in ascending
	// identifier order.
	NeedsSortedRoster() bool

	// NeedsSortedEntries reports whether Apply expects the entries in ascending
	// identifier order.
	NeedsSortedEntries() bool
}

// EntryError describes the entry that broke a strategy's precondition.
type EntryError struct {
	Strategy string
	Course   string
	Index    int
	ID       string
	Err      error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s join of %q: entry %d (%s): %v", e.Strategy, e.Course, e.Index+1, e.ID, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

var registry = map[string]Strategy{
	Linear{}.Name(): Linear{},
	Binary{}.Name(): Binary{},
	Merge{}.Name():  Merge{},
	Hash{}.Name():   Hash{},
}

// ByName returns the strategy registered under name.
func ByName(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, name, Names())
	}
	return s, nil
}

// Names returns the registered strategy names in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// set records score on the student at position i.
func set(roster model.Roster, i int, course string, score float64) {
	if roster[i].Grades == nil {
		roster[i].Grades = make(model.Grades)
	}
	roster[i].Grades.Set(course, score)
}
