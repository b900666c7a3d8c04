package result

import (
	"maps"
	"math"
	"slices"

	"github.com/vk/notesmerge/internal/model"
)

// Result is the evaluated outcome of one student. Average is nil when no course
// is graded.
type Result struct {
	Average *float64
	Mention Mention
}

// Evaluator computes results against a mention table.
type Evaluator struct {
	table  Table
	absent Mention
}

// NewEvaluator returns an evaluator using table and absent as the label for
// students with no graded course. The table must pass Validate.
func NewEvaluator(table Table, absent Mention) (*Evaluator, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if absent == "" {
		absent = MentionAbsent
	}
	return &Evaluator{table: table, absent: absent}, nil
}

var defaultEvaluator = &Evaluator{table: DefaultTable(), absent: MentionAbsent}

// Evaluate computes the result of grades with the stock mention table.
func Evaluate(grades model.Grades) Result {
	return defaultEvaluator.Evaluate(grades)
}

// Evaluate computes the result of grades.
func (e *Evaluator) Evaluate(grades model.Grades) Result {
	var sum float64
	graded := 0
	// Float addition is order-sensitive; sum in sorted course order.
	for _, course := range slices.Sorted(maps.Keys(grades)) {
		if s := grades[course]; s != nil {
			sum += *s
			graded++
		}
	}
	if graded == 0 {
		return Result{Mention: e.absent}
	}

	avg := Round(sum/float64(len(grades)), 3)
	return Result{Average: &avg, Mention: e.table.Classify(avg)}
}

// Round rounds v to the given number of decimals, half away from zero.
func Round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
