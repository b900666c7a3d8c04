package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the report in XLSX output.
const SheetName = "Notes"

// XLSX writes a single-sheet workbook with a header row. Scores and averages are
// stored as numeric cells; ungraded scores and missing averages are left blank.
type XLSX struct{}

// Write implements Writer.
func (x *XLSX) Write(path string, courses []string, rows []Row) error {
	f, err := x.build(courses, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeAtomic(path, func(w io.Writer) error {
		return f.Write(w)
	})
}

// header returns the column titles of the XLSX sheet.
func header(courses []string) []any {
	cols := []any{"NIP", "Nom", "Prénom", "Profil", "Groupe"}
	for _, c := range courses {
		cols = append(cols, c)
	}
	return append(cols, "Moyenne", "Mention")
}

// build assembles the workbook in memory.
func (x *XLSX) build(courses []string, rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	titles := header(courses)
	if err := f.SetSheetRow(SheetName, "A1", &titles); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := cells(row, courses)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write report row %d: %w", i+1, err)
		}
	}
	return f, nil
}

func cells(row Row, courses []string) []any {
	s := row.Student
	values := []any{s.ID, s.LastName, s.FirstName, s.Track, s.Group}
	for _, c := range courses {
		if v, ok := s.Grades.Score(c); ok {
			values = append(values, v)
		} else {
			values = append(values, nil)
		}
	}
	if row.Result.Average != nil {
		values = append(values, *row.Result.Average)
	} else {
		values = append(values, nil)
	}
	return append(values, row.Result.Mention.String())
}
