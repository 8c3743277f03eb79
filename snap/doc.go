// Package snap parses SNAP-format edge-list text files into an in-memory
// adjacency mapping, ready for CSR flattening.
//
// What
//
//   - Reads a plain, gzip (.gz) or bzip2 (.bz2) compressed edge list line by
//     line in a single pass.
//   - Skips blank lines and '#' comment lines; a comment containing both
//     "Nodes:" and "Edges:" tokens declares node/edge counts (whitespace
//     tolerant; malformed declarations are ignored, never fatal).
//   - Data lines are split on whitespace; lines with fewer than two fields
//     are skipped; the first two fields are the (source, destination) vertex
//     ids; extra fields are ignored.
//   - In undirected mode every edge (u,v) with u != v is also inserted as
//     (v,u). No deduplication is performed: if the input already lists both
//     directions, both mirrors are stored as well.
//   - Undirected mode resolves from an explicit Mode, or, under ModeAuto,
//     from the filename: "ungraph", "undirected" or "sym" as a
//     case-insensitive substring (compression extension stripped first).
//
// Determinism
//
//	Adjacency preserves file order per vertex; parsing the same file twice
//	yields identical Results.
//
// Complexity (L = lines, E = parsed edges)
//
//   - Time:   O(L + E)
//   - Memory: O(E) for the adjacency mapping
//
// Errors
//
//   - ErrInputMissing  if the input path cannot be opened.
//   - ErrEmptyGraph    if no edges were parsed.
//   - ErrBadVertexID   if a data line carries a non-integer or negative id.
//   - ErrScan          if reading fails mid-file (includes bad compression).
//
// Warnings (reported through the injected logr.Logger, never fatal):
//
//   - smallest observed vertex id > 0 with no declared node count — the
//     downstream CSR arrays will be zero-padded below that id.
package snap
