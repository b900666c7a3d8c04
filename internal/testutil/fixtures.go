// Package testutil holds shared fixtures for notesmerge tests: a small promotion
// roster with two course grade files, in both raw file form and parsed form.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/notesmerge/internal/model"
)

// Courses lists the courses of the small fixture, in report order.
var Courses = []string{"maths", "info"}

// RosterLines is the raw small roster, one student per line.
var RosterLines = []string{
	"99990179|HOUTEKIET- THOMAS|1|53",
	"11500571|SPROCQ - SIMON|1|11",
	"90000002|CALBUTH- RAYMOND|1|16",
	"11403526|SBAI- WISSEM|1|14",
	"11502148|WATRELOS - JEREMY|1|34",
	"11402978|SOETE- CEDRIC|1|34",
	"11505350|NGUESSAN- MODJUE NOEMIE|1|13",
	"11501693|VANOVERBERGHE - CORENTIN|1|22",
	"11503188|DELOBELLE TOUSSAINT- MATTHIEU|2|15",
	"11400130|SOUAISSA- AMZA|3|2",
	"99990125|PERON- BENJAMIN|1|41",
	"90000004|CALBUTH- RAYMOND|1|15",
	"90000001|CALBUTH- RAYMOND|4|1",
	"11504200|GUILLON - DAVID|1|22",
	"90000003|CALBUTH- MONIQUE|2|12",
	"11503442|BEAU- CORENTIN|2|13",
	"11503156|NAGET- ARTHUR|1|42",
}

// GradeLines holds the raw grade files of the small fixture, keyed by course.
var GradeLines = map[string][]string{
	"info": {
		"90000003|16.0", "11505350|14.0", "11503156|11.3", "11503442|10.2",
		"11400130|0.0", "11504200|4.1", "11403526|12.3", "11502148|11.8",
		"11501693|11.1", "90000004|20.0", "99990125|12.2", "99990179|9.0",
		"11402978|10.4", "90000002|0.0",
	},
	"maths": {
		"90000003|5.5", "11503156|15.1", "11500571|10.2", "11402978|14.2",
		"99990125|11.8", "11400130|9.6", "11403526|10.3", "11502148|10.7",
		"99990179|7.5", "11503188|11.2", "11503442|8.2", "11505350|4.4",
		"90000002|0.0", "90000004|20.0",
	},
}

var tracks = map[string]string{"1": "SESI", "2": "PEIP", "3": "MASS", "4": "LICAM"}

// Roster returns the small roster parsed, every course ungraded, in file order.
func Roster() model.Roster {
	r := make(model.Roster, 0, len(RosterLines))
	for _, line := range RosterLines {
		f := strings.Split(line, "|")
		last, first, _ := strings.Cut(f[1], "- ")
		r = append(r, model.Student{
			ID:        f[0],
			LastName:  last,
			FirstName: first,
			Track:     tracks[f[2]],
			Group:     f[3],
			Grades:    model.NewGrades(Courses),
		})
	}
	return r
}

// Entries returns the parsed grade entries of course, in file order.
func Entries(course string) []model.GradeEntry {
	lines := GradeLines[course]
	out := make([]model.GradeEntry, 0, len(lines))
	for _, line := range lines {
		id, raw, _ := strings.Cut(line, "|")
		out = append(out, model.GradeEntry{ID: id, Score: mustFloat(raw)})
	}
	return out
}

// ptr returns a pointer to v.
func ptr(v float64) *float64 { return &v }

// MergedGrades is the expected grade map of every student once both fixture
// courses are merged, keyed by identifier.
var MergedGrades = map[string]model.Grades{
	"99990179": {"maths": ptr(7.5), "info": ptr(9.0)},
	"11500571": {"maths": ptr(10.2), "info": nil},
	"90000002": {"maths": ptr(0.0), "info": ptr(0.0)},
	"11403526": {"maths": ptr(10.3), "info": ptr(12.3)},
	"11502148": {"maths": ptr(10.7), "info": ptr(11.8)},
	"11402978": {"maths": ptr(14.2), "info": ptr(10.4)},
	"11505350": {"maths": ptr(4.4), "info": ptr(14.0)},
	"11501693": {"maths": nil, "info": ptr(11.1)},
	"11503188": {"maths": ptr(11.2), "info": nil},
	"11400130": {"maths": ptr(9.6), "info": ptr(0.0)},
	"99990125": {"maths": ptr(11.8), "info": ptr(12.2)},
	"90000004": {"maths": ptr(20.0), "info": ptr(20.0)},
	"90000001": {"maths": nil, "info": nil},
	"11504200": {"maths": nil, "info": ptr(4.1)},
	"90000003": {"maths": ptr(5.5), "info": ptr(16.0)},
	"11503442": {"maths": ptr(8.2), "info": ptr(10.2)},
	"11503156": {"maths": ptr(15.1), "info": ptr(11.3)},
}

// AdminOrder is the expected identifier sequence after the administrative sort.
var AdminOrder = []string{
	"90000001", "11400130", "11503442", "90000003", "11503188", "90000002",
	"90000004", "11504200", "99990179", "11503156", "11505350", "99990125",
	"11403526", "11402978", "11500571", "11501693", "11502148",
}

// WriteDataDir lays out the fixture as a data directory under a fresh temp dir
// and returns its path. extra files are written relative to the data directory
// and may override the defaults.
func WriteDataDir(t *testing.T, extra map[string]string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	files := map[string]string{
		"liste_etudiants.csv": strings.Join(RosterLines, "\n") + "\n",
	}
	for course, lines := range GradeLines {
		files["notes_"+course+".csv"] = strings.Join(lines, "\n") + "\n"
	}
	for name, content := range extra {
		files[name] = content
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
