// Package snap: single-pass SNAP edge-list parser.
package snap

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"go.uber.org/multierr"
)

// Mode controls reverse-edge insertion.
type Mode uint8

const (
	// ModeAuto infers undirectedness from the filename ("ungraph",
	// "undirected" or "sym" as a case-insensitive substring).
	ModeAuto Mode = iota
	// ModeDirected stores each edge exactly as listed.
	ModeDirected
	// ModeUndirected also inserts the mirror (v,u) for every (u,v), u != v.
	ModeUndirected
)

// String reports the CLI spelling of m.
func (m Mode) String() string {
	switch m {
	case ModeDirected:
		return "false"
	case ModeUndirected:
		return "true"
	default:
		return "auto"
	}
}

// ParseMode maps the CLI spellings "auto", "true" and "false" onto a Mode.
// Any other string yields ErrBadMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return ModeAuto, nil
	case "true":
		return ModeUndirected, nil
	case "false":
		return ModeDirected, nil
	default:
		return ModeAuto, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// Result is the outcome of a successful Parse.
// Adjacency maps each source vertex to its destinations in file order
// (mirrors included in undirected mode); it is never mutated by this
// package after Parse returns.
type Result struct {
	// Adjacency holds destination ids per source vertex, in file order.
	Adjacency map[int64][]int64

	// MinVertex and MaxVertex are the smallest and largest ids observed.
	MinVertex int64
	MaxVertex int64

	// EdgeCount is the total number of adjacency entries, i.e. parsed data
	// lines plus undirected mirrors.
	EdgeCount int64

	// DeclaredNodes and DeclaredEdges come from a "# Nodes: N Edges: M"
	// comment; -1 when no well-formed declaration was seen.
	DeclaredNodes int64
	DeclaredEdges int64

	// Undirected reports the resolved reverse-edge insertion flag.
	Undirected bool
}

// DetectUndirected resolves m against path. ModeDirected and ModeUndirected
// win outright; under ModeAuto the base filename, with any .gz/.bz2
// extension stripped, is matched case-insensitively against the usual SNAP
// naming conventions.
func DetectUndirected(path string, m Mode) bool {
	switch m {
	case ModeUndirected:
		return true
	case ModeDirected:
		return false
	}
	name := strings.ToLower(filepath.Base(path))
	switch filepath.Ext(name) {
	case ".gz", ".bz2":
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return strings.Contains(name, "ungraph") ||
		strings.Contains(name, "undirected") ||
		strings.Contains(name, "sym")
}

// Parse reads the SNAP edge list at path and accumulates its adjacency
// mapping in one pass. See the package documentation for the line grammar.
// Returns ErrInputMissing, ErrEmptyGraph, ErrBadVertexID or ErrScan.
func Parse(path string, opts ...Option) (res *Result, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputMissing, path, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	r, err := decompress(f, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScan, path, err)
	}

	res = &Result{
		Adjacency:     make(map[int64][]int64),
		MaxVertex:     -1,
		DeclaredNodes: -1,
		DeclaredEdges: -1,
		Undirected:    DetectUndirected(path, o.mode),
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			res.parseHeader(line)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		src, err := parseVertexID(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		dst, err := parseVertexID(fields[1], lineNo)
		if err != nil {
			return nil, err
		}

		res.insert(src, dst)
		if res.Undirected && src != dst {
			res.insert(dst, src)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScan, path, err)
	}

	if res.MaxVertex < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyGraph, path)
	}
	if res.MinVertex > 0 && res.DeclaredNodes < 0 {
		o.log.Info("smallest vertex id is positive; CSR arrays will be zero-padded",
			"minVertex", res.MinVertex, "input", path)
	}

	return res, nil
}

// insert records the edge src→dst and updates the observed id range.
func (r *Result) insert(src, dst int64) {
	r.Adjacency[src] = append(r.Adjacency[src], dst)
	r.EdgeCount++

	lo, hi := src, dst
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi > r.MaxVertex {
		r.MaxVertex = hi
	}
	if r.EdgeCount == 1 || lo < r.MinVertex {
		r.MinVertex = lo
	}
}

// parseHeader extracts declared counts from a "# Nodes: N Edges: M" comment.
// Anything malformed leaves the declaration absent; never an error.
func (r *Result) parseHeader(line string) {
	if !strings.Contains(line, "Nodes:") || !strings.Contains(line, "Edges:") {
		return
	}
	fields := strings.Fields(strings.ReplaceAll(line, "#", " "))
	nodes, okN := intAfter(fields, "Nodes:")
	edges, okE := intAfter(fields, "Edges:")
	if !okN || !okE {
		return
	}
	r.DeclaredNodes = nodes
	r.DeclaredEdges = edges
}

// intAfter parses the token following the first occurrence of key.
func intAfter(fields []string, key string) (int64, bool) {
	for i, f := range fields {
		if f == key && i+1 < len(fields) {
			v, err := strconv.ParseInt(fields[i+1], 10, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// parseVertexID parses a single non-negative vertex id field.
func parseVertexID(field string, lineNo int) (int64, error) {
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q", ErrBadVertexID, lineNo, field)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: line %d: negative id %d", ErrBadVertexID, lineNo, v)
	}
	return v, nil
}

// decompress wraps r according to the path extension. Plain files pass
// through untouched.
func decompress(r io.Reader, path string) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return gzip.NewReader(r)
	case ".bz2":
		return bzip2.NewReader(r, nil)
	default:
		return r, nil
	}
}
