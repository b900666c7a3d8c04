// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the per-student grade map and the grade entry read from a
// course file.
package model

// GradeEntry is a single line of a per-course grade file.
type GradeEntry struct {
	ID    string
	Score float64
}

// Grades maps a course code to an optional score. A nil value marks the course as
// tracked but ungraded.
type Grades map[string]*float64

// NewGrades returns a map with every course present and ungraded.
func NewGrades(courses []string) Grades {
	g := make(Grades, len(courses))
	for _, c := range courses {
		g[c] = nil
	}
	return g
}

// Set records score for course, adding the course if it was not tracked yet.
func (g Grades) Set(course string, score float64) {
	g[course] = &score
}

// Score returns the score recorded for course and whether one exists.
func (g Grades) Score(course string) (float64, bool) {
	s, ok := g[course]
	if !ok || s == nil {
		return 0, false
	}
	return *s, true
}

// Graded reports how many tracked courses carry a score.
func (g Grades) Graded() int {
	n := 0
	for _, s := range g {
		if s != nil {
			n++
		}
	}
	return n
}
