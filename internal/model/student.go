// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Student record and the Roster that owns it.
package model

// Student is one roster record. Track holds the mapped profile name, which is
// also the first key of the administrative ordering.
type Student struct {
	ID        string
	LastName  string
	FirstName string
	Track     string
	Group     string
	Grades    Grades
}

// Roster is the ordered student collection of a run. Its order is insertion order
// until a sorter rearranges it.
type Roster []Student
