// Package snapcsr converts SNAP edge-list text files into the flat CSR
// binaries consumed by GPU/SIMD graph-processing frameworks.
//
// 🚀 What is snapcsr?
//
//	A one-shot format converter, library-first, with a thin CLI:
//		• snap/    — parse SNAP *.txt edge lists (plain, .gz or .bz2),
//		             recognize "# Nodes: N Edges: M" headers, accumulate
//		             per-vertex adjacency, detect undirected inputs
//		• csr/     — flatten adjacency into begin-position offsets and a
//		             contiguous neighbor array, optionally sorted
//		• binio/   — write/read raw headerless int64 arrays (native endian)
//		• convert/ — wire the pipeline end to end, derive output names,
//		             run TOML-manifest batches
//		• cmd/snap2csr — command-line entry point
//
// ✨ Why snapcsr?
//
//   - Deterministic – identical input and flags produce byte-identical binaries
//   - Honest errors – package-prefixed sentinels, checked with errors.Is
//   - Faithful – undirected doubling and zero-padding match the layout that
//     downstream BFS/SSSP engines expect, quirks included
//
// Output layout for prefix P:
//
//	P.mtx_beg_pos.bin — vertex_count+1 int64 offsets, offsets[0] = 0
//	P.mtx_csr.bin     — edge_count int64 destination ids
//	P.mtx_weight.bin  — edge_count int64 constant fill (only on request)
//
// Quick start:
//
//	go run ./cmd/snap2csr --input web-Google.txt.gz --output-prefix out/web-Google
package snapcsr
