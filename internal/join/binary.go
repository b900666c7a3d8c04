package join

import (
	"github.com/vk/notesmerge/internal/model"
	"github.com/vk/notesmerge/internal/sorting"
)

// Binary locates each entry by halving a closed interval [lo, hi] of the roster.
// The roster must be sorted by identifier and must contain every entry's
// identifier.
type Binary struct{}

func (Binary) Name() string             { return "binary" }
func (Binary) NeedsSortedRoster() bool  { return true }
func (Binary) NeedsSortedEntries() bool { return false }

// Apply implements Strategy. Scores are only written once every entry has been
// located, so a failed call leaves the roster untouched.
func (b Binary) Apply(course string, roster model.Roster, entries []model.GradeEntry) error {
	if len(entries) == 0 || len(roster) == 0 {
		return nil
	}
	if !sorting.IsSortedByID(roster) {
		return &EntryError{Strategy: b.Name(), Course: course, Index: 0, ID: entries[0].ID, Err: ErrUnsorted}
	}

	positions := make([]int, len(entries))
	for k, e := range entries {
		i, ok := search(roster, e.ID)
		if !ok {
			return &EntryError{Strategy: b.Name(), Course: course, Index: k, ID: e.ID, Err: ErrNotFound}
		}
		positions[k] = i
	}
	for k, e := range entries {
		set(roster, positions[k], course, e.Score)
	}
	return nil
}

// search returns the position of id in a roster sorted by identifier.
func search(roster model.Roster, id string) (int, bool) {
	lo, hi := 0, len(roster)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch current := roster[mid].ID; {
		case current < id:
			lo = mid + 1
		case current > id:
			hi = mid - 1
		default:
			return mid, true
		}
	}
	return 0, false
}
