// Package ingest reads the delimited text inputs of a run: the student roster and
// the per-course grade files.
//
// Roster lines have four fields, identifier, "LAST- FIRST" name, profile code
// and group. Grade lines have two fields, identifier and score. Both use a
// configurable single-character separator. A missing file yields a
// *MissingFileError and a bad line yields a *LineError wrapping
// ErrMalformedField; in both cases the read produces no records.
package ingest
