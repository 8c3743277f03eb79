// Package convert wires the full pipeline: parse a SNAP edge list, flatten
// it to CSR, and write the binary arrays under an output prefix.
//
// What
//
//   - Run performs one conversion: snap.Parse → csr.Build → binio writes.
//     Fatal parse/build errors surface before any output file is created,
//     so a failed run never leaves partial binaries behind.
//   - Output names derive from Options.OutputPrefix:
//     <prefix>.mtx_beg_pos.bin, <prefix>.mtx_csr.bin and, only when a
//     constant weight was requested, <prefix>.mtx_weight.bin.
//   - Parent directories of the prefix are created on demand.
//   - LoadManifest/RunAll convert whole dataset batches from a TOML
//     manifest, applying a [defaults] table to jobs that omit a setting and
//     stopping at the first failing job.
//
// Determinism
//
//	Running the same input with the same options twice produces
//	byte-identical output files.
//
// Manifest grammar:
//
//	[defaults]
//	undirected = "auto"   # "auto" | "true" | "false"
//	sort = false
//
//	[[job]]
//	input = "datasets/com-lj.ungraph.txt.gz"
//	output_prefix = "out/com-lj"
//	weight_value = 1      # optional; emits the weight buffer
//
//	[[job]]
//	input = "datasets/web-Google.txt"
//	output_prefix = "out/web-Google"
//	undirected = "false"  # overrides [defaults]
//	sort = true
//
// Errors
//
//   - ErrNoInput / ErrNoPrefix for incomplete Options.
//   - ErrMkdir when the prefix's parent directory cannot be created.
//   - ErrManifest / ErrManifestEmpty for unreadable or jobless manifests.
//   - Everything from snap, csr and binio, unwrapped-matchable via errors.Is.
package convert
