// Package snap: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with
// context via fmt.Errorf("...: %w", ...)); callers match with errors.Is.
package snap

import "errors"

var (
	// ErrInputMissing is returned when the input path cannot be opened.
	ErrInputMissing = errors.New("snap: input file missing")

	// ErrEmptyGraph is returned when no edges were parsed from the input.
	ErrEmptyGraph = errors.New("snap: no edges parsed")

	// ErrBadVertexID is returned when a data line carries a vertex id that
	// is not a non-negative integer.
	ErrBadVertexID = errors.New("snap: malformed vertex id")

	// ErrScan is returned when reading the input fails mid-file, including
	// gzip/bzip2 stream corruption.
	ErrScan = errors.New("snap: input read failed")

	// ErrBadMode is returned by ParseMode for strings other than
	// "auto", "true" or "false".
	ErrBadMode = errors.New("snap: invalid undirected mode")
)
