package join

import (
	"github.com/vk/notesmerge/internal/model"
	"github.com/vk/notesmerge/internal/sorting"
)

// Merge walks the roster and the entries together with a forward-only cursor.
// Both must be sorted by identifier, or Apply fails with ErrUnsorted. Every entry
// must be reachable from the cursor, which rules out unknown identifiers and
// repeated entries.
type Merge struct{}

func (Merge) Name() string             { return "merge" }
func (Merge) NeedsSortedRoster() bool  { return true }
func (Merge) NeedsSortedEntries() bool { return true }

// Apply implements Strategy. Scores are only written once every entry has been
// matched, so a failed call leaves the roster untouched.
func (m Merge) Apply(course string, roster model.Roster, entries []model.GradeEntry) error {
	if len(roster) == 0 || len(entries) == 0 {
		return nil
	}
	if !sorting.IsSortedByID(roster) || !sorting.EntriesSorted(entries) {
		return &EntryError{Strategy: m.Name(), Course: course, Index: 0, ID: entries[0].ID, Err: ErrUnsorted}
	}
	positions := make([]int, len(entries))
	cursor := 0
	for k, e := range entries {
		for cursor < len(roster) && roster[cursor].ID != e.ID {
			cursor++
		}
		if cursor == len(roster) {
			return &EntryError{Strategy: m.Name(), Course: course, Index: k, ID: e.ID, Err: ErrNotFound}
		}
		positions[k] = cursor
		cursor++
	}
	for k, e := range entries {
		set(roster, positions[k], course, e.Score)
	}
	return nil
}
