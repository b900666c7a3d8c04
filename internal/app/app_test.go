package app_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/notesmerge/internal/app"
	"github.com/vk/notesmerge/internal/hcl"
	"github.com/vk/notesmerge/internal/ingest"
	"github.com/vk/notesmerge/internal/join"
	"github.com/vk/notesmerge/internal/testutil"
	"github.com/xuri/excelize/v2"
)

// runApp runs the pipeline over dataDir and returns the report path and log.
func runApp(t *testing.T, cfg app.Config) (string, string, error) {
	t.Helper()
	if cfg.Output == "" {
		cfg.Output = filepath.Join(t.TempDir(), "notes_etudiants.csv")
	}
	a, logs := app.SetupAppTest(t, &cfg, hcl.NewLoader())
	err := a.Run(context.Background())
	return cfg.Output, logs.String(), err
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestRun_AllStrategiesProduceSameReport(t *testing.T) {
	t.Parallel()

	for _, name := range join.Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			dataDir := testutil.WriteDataDir(t, nil)

			// --- Act ---
			out, logs, err := runApp(t, app.Config{
				DataDir:  dataDir,
				Courses:  testutil.Courses,
				Strategy: name,
			})

			// --- Assert ---
			require.NoError(t, err)
			lines := readLines(t, out)
			require.Len(t, lines, len(testutil.AdminOrder))

			ids := make([]string, len(lines))
			for i, l := range lines {
				ids[i], _, _ = strings.Cut(l, "|")
			}
			assert.Equal(t, testutil.AdminOrder, ids)

			assert.Contains(t, lines, "90000001|CALBUTH|RAYMOND|LICAM|1||||Absent")
			assert.Contains(t, lines, "90000004|CALBUTH|RAYMOND|SESI|15|20.0|20.0|20.0|TB")
			assert.Contains(t, lines, "11500571|SPROCQ |SIMON|SESI|11|10.2||5.1|Ajourné")
			assert.Contains(t, lines, "11403526|SBAI|WISSEM|SESI|14|10.3|12.3|11.3|Passable")
			assert.Contains(t, logs, "strategy="+name)
			assert.Contains(t, logs, "run_id=")
			assert.Contains(t, logs, "course=maths")
		})
	}
}

func TestRun_MissingGradeFileAbortsBeforeWriting(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dataDir := testutil.WriteDataDir(t, nil)

	// --- Act ---
	out, _, err := runApp(t, app.Config{DataDir: dataDir, Courses: []string{"maths", "phys"}})

	// --- Assert ---
	var missing *ingest.MissingFileError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, filepath.Join(dataDir, "notes_phys.csv"), missing.Path)
	assert.NoFileExists(t, out)
}

func TestRun_MissingRoster(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()

	_, _, err := runApp(t, app.Config{DataDir: dataDir, Courses: []string{"maths"}})

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "liste_etudiants.csv")
}

func TestRun_MalformedScoreAborts(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dataDir := testutil.WriteDataDir(t, map[string]string{
		"notes_maths.csv": "11500571|10.2\n11403526|abc\n",
	})

	// --- Act ---
	out, _, err := runApp(t, app.Config{DataDir: dataDir, Courses: testutil.Courses})

	// --- Assert ---
	require.ErrorIs(t, err, ingest.ErrMalformedField)
	assert.Contains(t, err.Error(), "notes_maths.csv:2")
	assert.NoFileExists(t, out)
}

func TestRun_UnmatchedEntry(t *testing.T) {
	t.Parallel()

	extra := map[string]string{"notes_maths.csv": "11500571|10.2\n00000000|12.0\n"}

	testCases := []struct {
		strategy string
		wantErr  error
	}{
		{strategy: "linear"},
		{strategy: "hash"},
		{strategy: "binary", wantErr: join.ErrNotFound},
		{strategy: "merge", wantErr: join.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.strategy, func(t *testing.T) {
			t.Parallel()

			dataDir := testutil.WriteDataDir(t, extra)

			out, _, err := runApp(t, app.Config{DataDir: dataDir, Courses: []string{"maths"}, Strategy: tc.strategy})

			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.FileExists(t, out)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			assert.NoFileExists(t, out)
		})
	}
}

func TestRun_AllDiscoversGradeFiles(t *testing.T) {
	t.Parallel()

	dataDir := testutil.WriteDataDir(t, nil)

	out, _, err := runApp(t, app.Config{DataDir: dataDir, All: true})

	require.NoError(t, err)
	// Discovered courses come sorted: info before maths.
	assert.Contains(t, readLines(t, out), "11500571|SPROCQ |SIMON|SESI|11||10.2|5.1|Ajourné")
}

func TestRun_AllRerunSkipsOwnReport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The default report name matches the default grade pattern.
	dataDir := testutil.WriteDataDir(t, nil)
	cfg := app.Config{DataDir: dataDir, All: true, Output: filepath.Join(dataDir, "notes_etudiants.csv")}

	// --- Act ---
	out, _, firstErr := runApp(t, cfg)
	first := readLines(t, out)
	_, logs, secondErr := runApp(t, cfg)

	// --- Assert ---
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.Equal(t, first, readLines(t, out))
	assert.Contains(t, logs, "Skipping discovered file")
}

func TestRun_AllSkipsRosterMatchingPattern(t *testing.T) {
	t.Parallel()

	dataDir := testutil.WriteDataDir(t, map[string]string{
		"notes.hcl":        `roster_file = "notes_roster.csv"`,
		"notes_roster.csv": strings.Join(testutil.RosterLines, "\n") + "\n",
	})

	out, _, err := runApp(t, app.Config{DataDir: dataDir, All: true})

	require.NoError(t, err)
	assert.Len(t, readLines(t, out), len(testutil.AdminOrder))
	assert.Contains(t, readLines(t, out), "11500571|SPROCQ |SIMON|SESI|11||10.2|5.1|Ajourné")
}

func TestRun_NoCourses(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()

	_, _, err := runApp(t, app.Config{DataDir: dataDir, All: true})

	require.ErrorIs(t, err, app.ErrNoCourses)
}

func TestRun_SettingsFileInDataDir(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dataDir := testutil.WriteDataDir(t, map[string]string{
		"notes.hcl": `
courses  = ["info"]
strategy = "merge"

mention "Fail" { below = 10 }
mention "Pass" {}
`,
	})

	// --- Act ---
	out, logs, err := runApp(t, app.Config{DataDir: dataDir, Courses: []string{"maths", "info"}})

	// --- Assert ---
	require.NoError(t, err)
	lines := readLines(t, out)
	assert.Contains(t, lines, "11500571|SPROCQ |SIMON|SESI|11||10.2|5.1|Fail")
	assert.Contains(t, lines, "11403526|SBAI|WISSEM|SESI|14|12.3|10.3|11.3|Pass")
	assert.Contains(t, logs, "strategy=merge")
}

func TestRun_ExplicitSettingsFileMustExist(t *testing.T) {
	t.Parallel()

	dataDir := testutil.WriteDataDir(t, nil)
	path := filepath.Join(t.TempDir(), "absent.hcl")

	_, _, err := runApp(t, app.Config{DataDir: dataDir, ConfigPath: path, Courses: testutil.Courses})

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestRun_CustomSeparatorAndEncoding(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// "CLÉMENT" in latin-1: É is the single byte 0xC9.
	dataDir := testutil.WriteDataDir(t, map[string]string{
		"liste_etudiants.csv": "11500571;DUPONT- CL\xc9MENT;2;7\n",
		"notes_maths.csv":     "11500571;13.5\n",
	})

	// --- Act ---
	out, _, err := runApp(t, app.Config{
		DataDir:   dataDir,
		Courses:   []string{"maths"},
		Separator: ";",
		Encoding:  "latin-1",
	})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"11500571;DUPONT;CLÉMENT;PEIP;7;13.5;13.5;AB"}, readLines(t, out))
}

func TestRun_XLSXReport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dataDir := testutil.WriteDataDir(t, nil)
	out := filepath.Join(t.TempDir(), "notes.xlsx")

	// --- Act ---
	_, _, err := runApp(t, app.Config{DataDir: dataDir, Courses: testutil.Courses, Output: out, Format: "xlsx"})

	// --- Assert ---
	require.NoError(t, err)
	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows("Notes")
	require.NoError(t, err)
	require.Len(t, rows, len(testutil.AdminOrder)+1)
	assert.Equal(t, "NIP", rows[0][0])
	assert.Equal(t, testutil.AdminOrder[0], rows[1][0])
}
