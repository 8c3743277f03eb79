// SPDX-License-Identifier: MIT

// Package csr: sentinel error set, matched via errors.Is.
package csr

import "errors"

var (
	// ErrResultNil is returned when Build receives a nil parse result.
	ErrResultNil = errors.New("csr: parse result is nil")

	// ErrNegativeVertex is returned when the adjacency mapping contains a
	// negative vertex id, which cannot index the dense offsets array.
	ErrNegativeVertex = errors.New("csr: negative vertex id")
)
