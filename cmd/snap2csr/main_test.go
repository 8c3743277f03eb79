package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapcsr/convert"
)

func TestFormatSummary(t *testing.T) {
	s := &convert.Summary{
		Input:       "toy.txt",
		VertexCount: 3,
		EdgeCount:   4,
		Undirected:  true,
		Outputs:     []string{"out/toy.mtx_beg_pos.bin", "out/toy.mtx_csr.bin"},
	}
	want := "SNAP -> CSR conversion complete\n" +
		" Input file : toy.txt\n" +
		" Vertices   : 3\n" +
		" Edges      : 4\n" +
		" Undirected : true\n" +
		" Outputs    : out/toy.mtx_beg_pos.bin, out/toy.mtx_csr.bin\n"
	require.Equal(t, want, formatSummary(s))
}
