// SPDX-License-Identifier: MIT

// Package binio reads and writes flat binary arrays of signed 64-bit
// integers in native machine byte order — the raw headerless layout that
// CSR-consuming graph engines map straight into memory.
//
// What
//
//   - WriteInt64s serializes a slice as consecutive 8-byte words, no header,
//     no length prefix, no padding.
//   - ReadInt64s loads such a file back; the file size must be a multiple
//     of 8 bytes.
//   - Peek prints the first words of a file in human-readable form, for
//     inspecting binaries without a hex editor.
//
// File handles are scoped to the call and released on every path; close
// failures are appended to the returned error.
//
// Errors
//
//   - ErrCreate / ErrWrite on the write side.
//   - ErrOpen / ErrRead on the read side (ErrRead covers truncated files
//     and sizes that are not word-aligned).
package binio
