// SPDX-License-Identifier: MIT

// Package binio: raw int64 array serialization.
package binio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

// WordSize is the width of one serialized element in bytes.
const WordSize = 8

// WriteInt64s writes values to path as consecutive native-endian 8-byte
// signed integers. An empty slice produces an empty file.
func WriteInt64s(path string, values []int64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreate, path, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.NativeEndian, values); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return nil
}

// ReadInt64s loads a file written by WriteInt64s (or any raw int64 array of
// the same layout) back into a slice.
func ReadInt64s(path string) (values []int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	if info.Size()%WordSize != 0 {
		return nil, fmt.Errorf("%w: %s: size %d is not a multiple of %d",
			ErrRead, path, info.Size(), WordSize)
	}

	values = make([]int64, info.Size()/WordSize)
	if err := binary.Read(f, binary.NativeEndian, values); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	return values, nil
}

// Peek writes the first n words of the file at path to w, one "index value"
// pair per line. Files shorter than n words are dumped in full.
func Peek(w io.Writer, path string, n int) error {
	values, err := ReadInt64s(path)
	if err != nil {
		return err
	}
	if n > len(values) {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(w, "[%d] = %d\n", i, values[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	return nil
}
