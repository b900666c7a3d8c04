// Package sorting implements the orderings a notesmerge run relies on: the
// administrative report order and the identifier order that the binary-search and
// merge-join strategies require.
package sorting
