package result

import (
	"errors"
	"fmt"
	"math"
)

// Mention is the grade band label printed in the report.
type Mention string

// Stock mention labels.
const (
	MentionAbsent     Mention = "Absent"
	MentionFailed     Mention = "Ajourné"
	MentionPass       Mention = "Passable"
	MentionFairlyGood Mention = "AB"
	MentionGood       Mention = "B"
	MentionVeryGood   Mention = "TB"
)

func (m Mention) String() string { return string(m) }

// Band assigns Mention to every average strictly below Below. The last band of a
// table may be open-ended, using +Inf.
type Band struct {
	Below   float64
	Mention Mention
}

// Table is an ordered list of half-open bands [previous.Below, Below).
type Table []Band

// DefaultTable returns the stock bands: [0,10) Ajourné, [10,12) Passable,
// [12,14) AB, [14,16) B, [16,∞) TB.
func DefaultTable() Table {
	return Table{
		{Below: 10, Mention: MentionFailed},
		{Below: 12, Mention: MentionPass},
		{Below: 14, Mention: MentionFairlyGood},
		{Below: 16, Mention: MentionGood},
		{Below: math.Inf(1), Mention: MentionVeryGood},
	}
}

var (
	errEmptyTable     = errors.New("mention table is empty")
	errUnorderedTable = errors.New("mention bands must have strictly increasing bounds")
	errClosedTable    = errors.New("last mention band must be open-ended")
)

// Validate checks that bounds strictly increase and that the table ends with an
// open band, so every finite average maps to exactly one mention.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errEmptyTable
	}
	for i := range t {
		if t[i].Mention == "" {
			return fmt.Errorf("mention band %d has no label", i+1)
		}
		if i > 0 && !(t[i].Below > t[i-1].Below) {
			return fmt.Errorf("%w: band %d (%q)", errUnorderedTable, i+1, t[i].Mention)
		}
	}
	if !math.IsInf(t[len(t)-1].Below, 1) {
		return errClosedTable
	}
	return nil
}

// Classify returns the mention of the first band whose bound exceeds average.
func (t Table) Classify(average float64) Mention {
	for _, b := range t {
		if average < b.Below {
			return b.Mention
		}
	}
	return t[len(t)-1].Mention
}
