// Package convert: sentinel error set, matched via errors.Is.
package convert

import "errors"

var (
	// ErrNoInput is returned when Options.Input is empty.
	ErrNoInput = errors.New("convert: input path required")

	// ErrNoPrefix is returned when Options.OutputPrefix is empty.
	ErrNoPrefix = errors.New("convert: output prefix required")

	// ErrMkdir is returned when the output prefix's parent directory cannot
	// be created.
	ErrMkdir = errors.New("convert: create output directory failed")

	// ErrManifest is returned when a manifest file cannot be read or parsed.
	ErrManifest = errors.New("convert: manifest unreadable")

	// ErrManifestEmpty is returned when a manifest declares no jobs.
	ErrManifestEmpty = errors.New("convert: manifest has no jobs")
)
