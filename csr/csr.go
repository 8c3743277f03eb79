// SPDX-License-Identifier: MIT

// Package csr: adjacency-mapping → CSR flattening.
package csr

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/snapcsr/snap"
)

// Graph is the flattened CSR form of a parsed edge list.
type Graph struct {
	// BegPos holds VertexCount+1 offsets; BegPos[v+1]-BegPos[v] is the
	// out-degree of v.
	BegPos []int64

	// Adj holds destination ids grouped by source vertex in increasing
	// vertex order.
	Adj []int64

	// VertexCount is the resolved vertex count.
	VertexCount int64
}

// Build flattens res into CSR form. Vertex ids absent from the mapping get
// an empty neighbor list. Returns ErrResultNil or ErrNegativeVertex.
func Build(res *snap.Result, opts ...Option) (*Graph, error) {
	if res == nil {
		return nil, ErrResultNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for v := range res.Adjacency {
		if v < 0 {
			return nil, fmt.Errorf("%w: source %d", ErrNegativeVertex, v)
		}
	}

	vertexCount := res.MaxVertex + 1
	if res.DeclaredNodes > vertexCount {
		vertexCount = res.DeclaredNodes
	}

	g := &Graph{
		BegPos:      make([]int64, vertexCount+1),
		Adj:         make([]int64, 0, res.EdgeCount),
		VertexCount: vertexCount,
	}

	var cursor int64
	for v := int64(0); v < vertexCount; v++ {
		nbrs := res.Adjacency[v]
		for _, n := range nbrs {
			if n < 0 {
				return nil, fmt.Errorf("%w: %d in list of vertex %d", ErrNegativeVertex, n, v)
			}
		}
		if o.sortNeighbors && len(nbrs) > 1 {
			slices.Sort(nbrs)
		}
		g.Adj = append(g.Adj, nbrs...)
		cursor += int64(len(nbrs))
		g.BegPos[v+1] = cursor
	}

	if res.DeclaredEdges >= 0 && !res.Undirected && cursor != res.DeclaredEdges {
		o.log.Info("flattened edge count does not match declared count",
			"flattened", cursor, "declared", res.DeclaredEdges)
	}

	return g, nil
}

// EdgeCount reports the total number of adjacency entries.
func (g *Graph) EdgeCount() int64 {
	return g.BegPos[g.VertexCount]
}

// Degree reports the out-degree of v, or 0 for ids outside the graph.
func (g *Graph) Degree(v int64) int64 {
	if v < 0 || v >= g.VertexCount {
		return 0
	}
	return g.BegPos[v+1] - g.BegPos[v]
}

// Neighbors returns v's neighbor slice as a view into Adj, or nil for ids
// outside the graph. Callers must not mutate the returned slice.
func (g *Graph) Neighbors(v int64) []int64 {
	if v < 0 || v >= g.VertexCount {
		return nil
	}
	return g.Adj[g.BegPos[v]:g.BegPos[v+1]]
}

// ConstantWeights allocates a weight buffer of EdgeCount elements, every
// element equal to w.
func (g *Graph) ConstantWeights(w int64) []int64 {
	weights := make([]int64, g.EdgeCount())
	for i := range weights {
		weights[i] = w
	}
	return weights
}
