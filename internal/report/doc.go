// Package report turns the sorted, evaluated roster into the output file.
//
// Each row carries identifier, last name, first name, track, group, one score
// per tracked course, the average and the mention. Ungraded scores and missing
// averages are written as empty fields. Writers replace the target file
// atomically, so a failed write never leaves a truncated report behind.
package report
