// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory record shapes shared by every stage of a
// notesmerge run: the grade entries parsed from a course file, the students parsed
// from the roster, and the roster itself.
//
// # Core Concepts
//
//   - GradeEntry: One (identifier, score) pair read from a per-course grade file.
//
//   - Student: One roster line. It carries the mapped track name rather than the
//     raw profile code, and a Grades map holding one slot per tracked course.
//
//   - Grades: Course code to optional score. A nil score means "ungraded", which is
//     different from a score of zero.
//
//   - Roster: The ordered collection of students. Join strategies and sorters
//     operate on it in place, addressing students by position.
//
//   - Profiles: The fixed profile-code to track-name table used while reading the
//     roster.
package model
