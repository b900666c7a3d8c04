package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/vk/notesmerge/internal/ingest"
)

// Delimited writes one line per row, fields joined by Separator. It writes no
// header line.
type Delimited struct {
	Separator rune
}

// Write implements Writer.
func (d *Delimited) Write(path string, courses []string, rows []Row) error {
	return writeAtomic(path, func(w io.Writer) error {
		return d.Encode(w, courses, rows)
	})
}

// Encode writes rows to w.
func (d *Delimited) Encode(w io.Writer, courses []string, rows []Row) error {
	sep := d.Separator
	if sep == 0 {
		sep = ingest.DefaultSeparator
	}
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(strings.Join(Fields(row, courses), string(sep))); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
