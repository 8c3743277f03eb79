// SPDX-License-Identifier: MIT

// Package csr flattens a parsed adjacency mapping into compressed-sparse-row
// form: a begin-position offsets array and one contiguous neighbor array.
//
// What
//
//   - Build walks vertex ids 0..VertexCount-1 in increasing order; vertices
//     absent from the mapping contribute an empty neighbor list, which is
//     where zero-padding of unused low ids (and ids below a declared node
//     count) manifests.
//   - VertexCount resolves as max(observed max id + 1, declared node count);
//     a declared count only ever widens the graph, never truncates it.
//   - Per-vertex neighbor order is file order, or ascending when
//     WithSortNeighbors is applied (the sort is skipped for lists of length
//     0 or 1).
//   - A declared edge count that disagrees with the flattened total is
//     reported as a warning on directed graphs only; undirected doubling
//     makes the declared value incomparable.
//
// Invariants
//
//	len(BegPos) == VertexCount+1, BegPos[0] == 0, BegPos non-decreasing,
//	len(Adj) == BegPos[VertexCount].
//
// Complexity (V = vertices, E = adjacency entries)
//
//   - Time:   O(V + E), plus O(E log E) total when sorting
//   - Memory: O(V + E) for the output arrays
//
// Errors
//
//   - ErrResultNil      if Build receives a nil parse result.
//   - ErrNegativeVertex if the mapping contains a negative id.
package csr
