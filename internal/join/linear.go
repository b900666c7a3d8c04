package join

import "github.com/vk/notesmerge/internal/model"

// Linear scans the whole roster for every entry. Every student sharing an entry's
// identifier receives the score.
type Linear struct{}

func (Linear) Name() string             { return "linear" }
func (Linear) NeedsSortedRoster() bool  { return false }
func (Linear) NeedsSortedEntries() bool { return false }

// Apply implements Strategy.
func (Linear) Apply(course string, roster model.Roster, entries []model.GradeEntry) error {
	for _, e := range entries {
		for i := range roster {
			if roster[i].ID == e.ID {
				set(roster, i, course, e.Score)
			}
		}
	}
	return nil
}
