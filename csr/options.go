// SPDX-License-Identifier: MIT

// Package csr: functional configuration for Build.
package csr

import "github.com/go-logr/logr"

// Option mutates builder options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective builder configuration.
type Options struct {
	sortNeighbors bool
	log           logr.Logger
}

func defaultOptions() Options {
	return Options{
		sortNeighbors: false,
		log:           logr.Discard(),
	}
}

// WithSortNeighbors sorts each vertex's neighbor list ascending before
// flattening, for deterministic binaries independent of input edge order.
// Neighbor slices in the source mapping are sorted in place.
func WithSortNeighbors() Option {
	return func(o *Options) { o.sortNeighbors = true }
}

// WithLogger routes builder warnings to l. The default discards them.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		if l.GetSink() != nil {
			o.log = l
		}
	}
}
