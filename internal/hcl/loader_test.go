package hcl

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/notesmerge/internal/config"
	"github.com/vk/notesmerge/internal/ingest"
	"github.com/vk/notesmerge/internal/model"
	"github.com/vk/notesmerge/internal/result"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_FullFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeSettings(t, `
separator          = ";"
encoding           = "latin-1"
roster_file        = "students.txt"
grade_file_pattern = "grades-%s.txt"
output_file        = "out/report.xlsx"
output_format      = "xlsx"
strategy           = "merge"
courses            = ["maths", "info"]
absent_label       = "ABS"

profiles = {
  "1" = "SESI"
  "7" = 2024
}

mention "Ajourné" { below = 10 }
mention "Admis" {}
`)

	want := config.Default()
	want.Separator = ';'
	want.Encoding = "latin-1"
	want.RosterFile = "students.txt"
	want.GradeFilePattern = "grades-%s.txt"
	want.OutputFile = "out/report.xlsx"
	want.OutputFormat = "xlsx"
	want.Strategy = "merge"
	want.Courses = []string{"maths", "info"}
	want.AbsentLabel = "ABS"
	want.Profiles = model.Profiles{"1": "SESI", "7": "2024"}
	want.Mentions = result.Table{
		{Below: 10, Mention: result.MentionFailed},
		{Below: config.OpenBand, Mention: "Admis"},
	}

	// --- Act ---
	got, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Load_EmptyFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	got, err := NewLoader().Load(context.Background(), writeSettings(t, ""))

	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.hcl")

	_, err := NewLoader().Load(context.Background(), path)

	var missing *ingest.MissingFileError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, path, missing.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "syntax error", content: `separator = `, wantErr: "failed to parse"},
		{name: "unknown attribute", content: `colour = "blue"`, wantErr: "failed to decode"},
		{name: "wide separator", content: `separator = "||"`, wantErr: "exactly one character"},
		{name: "profiles not a map", content: `profiles = ["SESI"]`, wantErr: "map(string)"},
		{
			name: "open band not last",
			content: `
mention "A" {}
mention "B" { below = 12 }
`,
			wantErr: "not the last band",
		},
		{name: "bad pattern", content: `grade_file_pattern = "notes.csv"`, wantErr: "exactly one %s"},
		{name: "bad encoding", content: `encoding = "utf-16"`, wantErr: "unsupported encoding"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := writeSettings(t, tc.content)

			// --- Act ---
			_, err := NewLoader().Load(context.Background(), path)

			// --- Assert ---
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Contains(t, err.Error(), path)
		})
	}
}
