// SPDX-License-Identifier: MIT

// Package binio: sentinel error set, matched via errors.Is.
package binio

import "errors"

var (
	// ErrCreate is returned when the output file cannot be created.
	ErrCreate = errors.New("binio: create output failed")

	// ErrWrite is returned when writing or flushing the output fails.
	ErrWrite = errors.New("binio: write failed")

	// ErrOpen is returned when the input file cannot be opened.
	ErrOpen = errors.New("binio: open input failed")

	// ErrRead is returned on read failures, truncated files and sizes that
	// are not a multiple of the 8-byte word width.
	ErrRead = errors.New("binio: read failed")
)
