package csr_test

import (
	"errors"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapcsr/csr"
	"github.com/katalvlaran/snapcsr/snap"
)

// result builds a snap.Result by hand, the way Parse would have.
func result(adj map[int64][]int64, declaredNodes, declaredEdges int64, undirected bool) *snap.Result {
	res := &snap.Result{
		Adjacency:     adj,
		MaxVertex:     -1,
		DeclaredNodes: declaredNodes,
		DeclaredEdges: declaredEdges,
		Undirected:    undirected,
	}
	first := true
	for src, nbrs := range adj {
		for _, dst := range nbrs {
			res.EdgeCount++
			lo, hi := src, dst
			if lo > hi {
				lo, hi = hi, lo
			}
			if hi > res.MaxVertex {
				res.MaxVertex = hi
			}
			if first || lo < res.MinVertex {
				res.MinVertex = lo
				first = false
			}
		}
	}
	return res
}

// requireInvariants checks the structural CSR contract on any built graph.
func requireInvariants(t *testing.T, g *csr.Graph) {
	t.Helper()
	require.Len(t, g.BegPos, int(g.VertexCount)+1)
	require.Equal(t, int64(0), g.BegPos[0])
	for i := 1; i < len(g.BegPos); i++ {
		require.GreaterOrEqual(t, g.BegPos[i], g.BegPos[i-1], "BegPos not monotone at %d", i)
	}
	require.Equal(t, g.BegPos[g.VertexCount], int64(len(g.Adj)))
}

// Directed two-edge chain 0→1→2 with a declared node count of 3.
func TestBuild_DirectedChain(t *testing.T) {
	res := result(map[int64][]int64{0: {1}, 1: {2}}, 3, 2, false)

	g, err := csr.Build(res)
	require.NoError(t, err)

	require.Equal(t, int64(3), g.VertexCount)
	require.Equal(t, []int64{0, 1, 2, 2}, g.BegPos)
	require.Equal(t, []int64{1, 2}, g.Adj)
	requireInvariants(t, g)
}

// The same chain with mirrors inserted, as an undirected parse produces.
func TestBuild_UndirectedChain(t *testing.T) {
	res := result(map[int64][]int64{0: {1}, 1: {0, 2}, 2: {1}}, -1, -1, true)

	g, err := csr.Build(res)
	require.NoError(t, err)

	require.Equal(t, int64(3), g.VertexCount)
	require.Equal(t, []int64{0, 1, 3, 4}, g.BegPos)
	require.Equal(t, []int64{1, 0, 2, 1}, g.Adj)
	requireInvariants(t, g)
}

func TestBuild_ZeroPadding(t *testing.T) {
	// Only vertices 5 and 7 carry edges; everything below is padding.
	res := result(map[int64][]int64{5: {7}, 7: {5}}, -1, -1, false)

	g, err := csr.Build(res)
	require.NoError(t, err)

	require.Equal(t, int64(8), g.VertexCount)
	for v := int64(0); v < 5; v++ {
		require.Zero(t, g.Degree(v))
	}
	require.Equal(t, int64(1), g.Degree(5))
	require.Equal(t, []int64{7, 5}, g.Adj)
	requireInvariants(t, g)
}

func TestBuild_DeclaredNodesWiden(t *testing.T) {
	// Declared count above the observed max widens the graph with empty
	// tail vertices; a smaller declared count never truncates.
	res := result(map[int64][]int64{0: {1}}, 10, 1, false)
	g, err := csr.Build(res)
	require.NoError(t, err)
	require.Equal(t, int64(10), g.VertexCount)
	requireInvariants(t, g)

	res = result(map[int64][]int64{0: {9}}, 2, 1, false)
	g, err = csr.Build(res)
	require.NoError(t, err)
	require.Equal(t, int64(10), g.VertexCount)
}

func TestBuild_SortNeighbors(t *testing.T) {
	res := result(map[int64][]int64{0: {3, 1, 2}, 1: {0}}, -1, -1, false)

	unsorted, err := csr.Build(result(map[int64][]int64{0: {3, 1, 2}, 1: {0}}, -1, -1, false))
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 2, 0}, unsorted.Adj)

	sorted, err := csr.Build(res, csr.WithSortNeighbors())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 0}, sorted.Adj)
}

func TestBuild_Accessors(t *testing.T) {
	res := result(map[int64][]int64{0: {1, 2}, 2: {0}}, -1, -1, false)
	g, err := csr.Build(res)
	require.NoError(t, err)

	require.Equal(t, int64(3), g.EdgeCount())
	require.Equal(t, []int64{1, 2}, g.Neighbors(0))
	require.Empty(t, g.Neighbors(1))
	require.Nil(t, g.Neighbors(-1))
	require.Nil(t, g.Neighbors(99))
	require.Zero(t, g.Degree(99))

	// Round-trip: accessor views reproduce the builder's per-vertex input.
	for v := int64(0); v < g.VertexCount; v++ {
		require.Equal(t, len(res.Adjacency[v]), int(g.Degree(v)))
		if len(res.Adjacency[v]) > 0 {
			require.Equal(t, res.Adjacency[v], g.Neighbors(v))
		}
	}
}

func TestBuild_ConstantWeights(t *testing.T) {
	res := result(map[int64][]int64{0: {1, 2}, 1: {0, 2}}, -1, -1, false)
	g, err := csr.Build(res)
	require.NoError(t, err)

	weights := g.ConstantWeights(5)
	require.Len(t, weights, 4)
	for _, w := range weights {
		require.Equal(t, int64(5), w)
	}
}

// Declared-edge mismatches warn on directed graphs only; undirected
// doubling makes the declared value incomparable.
func TestBuild_DeclaredEdgeMismatchWarning(t *testing.T) {
	var msgs []string
	log := funcr.New(func(_, args string) { msgs = append(msgs, args) }, funcr.Options{})

	directed := result(map[int64][]int64{0: {1}}, -1, 5, false)
	_, err := csr.Build(directed, csr.WithLogger(log))
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0], "declared")

	msgs = nil
	undirected := result(map[int64][]int64{0: {1}, 1: {0}}, -1, 5, true)
	_, err = csr.Build(undirected, csr.WithLogger(log))
	require.NoError(t, err)
	require.Empty(t, msgs)

	msgs = nil
	matching := result(map[int64][]int64{0: {1}}, -1, 1, false)
	_, err = csr.Build(matching, csr.WithLogger(log))
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestBuild_Errors(t *testing.T) {
	if _, err := csr.Build(nil); !errors.Is(err, csr.ErrResultNil) {
		t.Errorf("nil result: want ErrResultNil, got %v", err)
	}

	bad := result(map[int64][]int64{0: {1}}, -1, -1, false)
	bad.Adjacency[0] = []int64{-3}
	if _, err := csr.Build(bad); !errors.Is(err, csr.ErrNegativeVertex) {
		t.Errorf("negative neighbor: want ErrNegativeVertex, got %v", err)
	}

	badKey := result(map[int64][]int64{0: {1}}, -1, -1, false)
	badKey.Adjacency[-1] = []int64{0}
	if _, err := csr.Build(badKey); !errors.Is(err, csr.ErrNegativeVertex) {
		t.Errorf("negative source: want ErrNegativeVertex, got %v", err)
	}
}
