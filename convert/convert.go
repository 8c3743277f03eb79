// Package convert: single-run pipeline orchestration.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/snapcsr/binio"
	"github.com/katalvlaran/snapcsr/csr"
	"github.com/katalvlaran/snapcsr/snap"
)

// Output filename suffixes, appended verbatim to the output prefix.
const (
	SuffixBegPos    = ".mtx_beg_pos.bin"
	SuffixAdjacency = ".mtx_csr.bin"
	SuffixWeight    = ".mtx_weight.bin"
)

// Options configures a single conversion run.
type Options struct {
	// Input is the SNAP edge-list path (plain, .gz or .bz2).
	Input string

	// OutputPrefix is the output path prefix; parent directories are
	// created if absent.
	OutputPrefix string

	// Undirected controls reverse-edge insertion; snap.ModeAuto infers it
	// from the filename.
	Undirected snap.Mode

	// SortNeighbors sorts each vertex's neighbor list ascending.
	SortNeighbors bool

	// WeightValue, when non-nil, requests the constant-fill weight buffer.
	// A nil pointer (not a zero value) disables emission, so 0 is a valid
	// fill constant.
	WeightValue *int64

	// Logger receives non-fatal warnings. A zero Logger discards them.
	Logger logr.Logger
}

// Summary reports the outcome of a successful Run.
type Summary struct {
	Input       string
	VertexCount int64
	EdgeCount   int64
	Undirected  bool
	Outputs     []string
}

// Run converts one SNAP edge list into CSR binaries. No output file is
// created until parsing and flattening have fully succeeded.
func Run(opts Options) (*Summary, error) {
	if opts.Input == "" {
		return nil, ErrNoInput
	}
	if opts.OutputPrefix == "" {
		return nil, ErrNoPrefix
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	res, err := snap.Parse(opts.Input,
		snap.WithUndirected(opts.Undirected),
		snap.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	buildOpts := []csr.Option{csr.WithLogger(log)}
	if opts.SortNeighbors {
		buildOpts = append(buildOpts, csr.WithSortNeighbors())
	}
	g, err := csr.Build(res, buildOpts...)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(opts.OutputPrefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMkdir, dir, err)
		}
	}

	begPosPath := opts.OutputPrefix + SuffixBegPos
	adjPath := opts.OutputPrefix + SuffixAdjacency
	if err := binio.WriteInt64s(begPosPath, g.BegPos); err != nil {
		return nil, err
	}
	if err := binio.WriteInt64s(adjPath, g.Adj); err != nil {
		return nil, err
	}
	outputs := []string{begPosPath, adjPath}

	if opts.WeightValue != nil {
		weightPath := opts.OutputPrefix + SuffixWeight
		if err := binio.WriteInt64s(weightPath, g.ConstantWeights(*opts.WeightValue)); err != nil {
			return nil, err
		}
		outputs = append(outputs, weightPath)
	}

	return &Summary{
		Input:       opts.Input,
		VertexCount: g.VertexCount,
		EdgeCount:   g.EdgeCount(),
		Undirected:  res.Undirected,
		Outputs:     outputs,
	}, nil
}
