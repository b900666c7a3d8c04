package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DefaultSeparator is the field separator of the stock file layout.
const DefaultSeparator = '|'

// Options controls how input files are decoded and split.
type Options struct {
	// Separator splits fields. Zero means DefaultSeparator.
	Separator rune
	// Encoding names the text encoding of the files: "utf-8" (default),
	// "latin-1" or "windows-1252".
	Encoding string
}

func (o Options) separator() string {
	if o.Separator == 0 {
		return string(DefaultSeparator)
	}
	return string(o.Separator)
}

// Encodings lists the accepted encoding names.
func Encodings() []string {
	return []string{"utf-8", "latin-1", "windows-1252"}
}

// LookupEncoding resolves an encoding name, accepting common aliases.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (supported: %s)", name, strings.Join(Encodings(), ", "))
	}
}

func (o Options) decode(r io.Reader) (io.Reader, error) {
	enc, err := LookupEncoding(o.Encoding)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(r), nil
}
