// Package join binds a course's grade entries onto a roster by student
// identifier.
//
// Four interchangeable strategies share one contract: for every entry whose
// identifier matches a student, set that student's grade for the course. They
// differ in preconditions and cost:
//
//   - Linear: no ordering requirement, O(|roster|·|entries|).
//   - Binary: roster sorted by identifier, O(|entries|·log|roster|).
//   - Merge: roster and entries sorted by identifier, O(|roster|+|entries|).
//   - Hash: no ordering requirement, O(|roster|+|entries|) using an index of
//     roster positions.
//
// Linear and Hash silently ignore entries with no matching student. Binary and
// Merge treat such entries as a broken precondition and return ErrNotFound, and
// they refuse inputs that are out of identifier order with ErrUnsorted. An empty
// roster has nothing to bind to and is a no-op for every strategy.
package join
