// Package models defines the data objects shared across gz packages.
package models

// ChangeEntry is one file with a pending change, either in the index or in
// the working tree.
type ChangeEntry struct {
	Path   string
	Staged bool
}

// LineStat counts the lines added and removed for a single path.
// Binary files report zero for both.
type LineStat struct {
	Added   int
	Removed int
}

// LineStats maps a path to its line counts.
type LineStats map[string]LineStat

// Lookup returns the counts for path, or zero counts when it is unknown.
func (s LineStats) Lookup(path string) LineStat {
	return s[path]
}
