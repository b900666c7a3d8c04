package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vk/notesmerge/internal/model"
	"github.com/vk/notesmerge/internal/result"
)

// Row pairs a student with its evaluated result.
type Row struct {
	Student model.Student
	Result  result.Result
}

// Writer serializes rows to a file at path. courses fixes the order of the score
// columns.
type Writer interface {
	Write(path string, courses []string, rows []Row) error
}

// Format names a report file format.
type Format string

const (
	FormatDelimited Format = "csv"
	FormatXLSX      Format = "xlsx"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{FormatDelimited, FormatXLSX} }

// NewWriter returns the writer for format. separator only applies to the
// delimited format.
func NewWriter(format Format, separator rune) (Writer, error) {
	switch format {
	case FormatDelimited, "":
		return &Delimited{Separator: separator}, nil
	case FormatXLSX:
		return &XLSX{}, nil
	default:
		names := make([]string, 0, len(Formats()))
		for _, f := range Formats() {
			names = append(names, string(f))
		}
		return nil, fmt.Errorf("unsupported report format %q (supported: %s)", format, strings.Join(names, ", "))
	}
}

// Fields returns the textual fields of row in report order.
func Fields(row Row, courses []string) []string {
	s := row.Student
	fields := make([]string, 0, 7+len(courses))
	fields = append(fields, s.ID, s.LastName, s.FirstName, s.Track, s.Group)
	for _, c := range courses {
		if v, ok := s.Grades.Score(c); ok {
			fields = append(fields, FormatScore(v))
		} else {
			fields = append(fields, "")
		}
	}
	if row.Result.Average != nil {
		fields = append(fields, FormatScore(*row.Result.Average))
	} else {
		fields = append(fields, "")
	}
	return append(fields, row.Result.Mention.String())
}

// FormatScore prints v in its shortest exact form, always with a decimal part:
// 12 becomes "12.0" and 11.333 stays "11.333".
func FormatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// writeAtomic streams into a temporary file next to path and renames it into
// place once fn and the close succeed.
func writeAtomic(path string, fn func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary report in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fn(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}
	return nil
}
