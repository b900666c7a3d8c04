// Package result derives a student's average and mention from their grade map.
//
// The average divides the sum of graded scores by the number of tracked
// courses, so an ungraded course weighs as a zero. It is rounded to three
// decimals, half away from zero. A student with no graded course has no average
// and the Absent mention. Mentions come from an ordered band table.
package result
