package join

import "github.com/vk/notesmerge/internal/model"

// Hash indexes roster positions by identifier and applies each entry with one
// lookup. With duplicate identifiers in the roster the last student wins.
type Hash struct{}

func (Hash) Name() string             { return "hash" }
func (Hash) NeedsSortedRoster() bool  { return false }
func (Hash) NeedsSortedEntries() bool { return false }

// Apply implements Strategy.
func (Hash) Apply(course string, roster model.Roster, entries []model.GradeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	index := Index(roster)
	for _, e := range entries {
		if i, ok := index[e.ID]; ok {
			set(roster, i, course, e.Score)
		}
	}
	return nil
}

// Index maps each identifier to its position in roster. The map addresses the
// roster's own storage; it holds no copies of students.
func Index(roster model.Roster) map[string]int {
	index := make(map[string]int, len(roster))
	for i := range roster {
		index[roster[i].ID] = i
	}
	return index
}
