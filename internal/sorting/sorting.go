package sorting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/vk/notesmerge/internal/model"
)

// CompareAdmin is the three-way administrative comparison. Students are ordered by
// track name, then last name, then first name, then identifier, each ascending and
// byte-wise.
func CompareAdmin(a, b model.Student) int {
	if c := strings.Compare(a.Track, b.Track); c != 0 {
		return c
	}
	if c := strings.Compare(a.LastName, b.LastName); c != 0 {
		return c
	}
	if c := strings.Compare(a.FirstName, b.FirstName); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// SortAdmin stably sorts the roster into report order.
func SortAdmin(r model.Roster) {
	slices.SortStableFunc(r, CompareAdmin)
}

// CompareID orders students by identifier only.
func CompareID(a, b model.Student) int {
	return strings.Compare(a.ID, b.ID)
}

// SortByID stably sorts the roster by identifier.
func SortByID(r model.Roster) {
	slices.SortStableFunc(r, CompareID)
}

// IsSortedByID reports whether the roster is in ascending identifier order.
func IsSortedByID(r model.Roster) bool {
	return slices.IsSortedFunc(r, CompareID)
}

// SortEntries stably sorts grade entries by identifier. Entries sharing an
// identifier keep their file order.
func SortEntries(entries []model.GradeEntry) {
	slices.SortStableFunc(entries, func(a, b model.GradeEntry) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// EntriesSorted reports whether entries are in ascending identifier order.
func EntriesSorted(entries []model.GradeEntry) bool {
	return slices.IsSortedFunc(entries, func(a, b model.GradeEntry) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
