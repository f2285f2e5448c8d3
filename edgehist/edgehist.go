// SPDX-License-Identifier: MIT

// Package edgehist provides the edge-histogram base kernel: two graphs are
// compared by the dot product of their counts of edges per unordered pair of
// endpoint labels.
package edgehist

import (
	"sort"

	"github.com/katalvlaran/wlkernel/internal/histogram"
	"github.com/katalvlaran/wlkernel/wl"
)

// Name identifies this kernel in logs and configuration.
const Name = "edge_histogram"

// LabelPair is an unordered pair of endpoint codes with Lo <= Hi.
type LabelPair struct {
	Lo, Hi int
}

// Kernel is an edge-histogram base kernel.
type Kernel = histogram.Kernel[LabelPair]

// New returns an unfitted edge-histogram kernel.
func New(s wl.Settings) *Kernel {
	return histogram.New(Name, s, Features)
}

// Factory is a wl.Factory producing edge-histogram kernels.
func Factory(s wl.Settings) (wl.BaseKernel, error) {
	return New(s), nil
}

// Features counts edges by endpoint-label pair. A symmetric adjacency entry
// (u lists v and v lists u) is one edge; a one-way entry is also one edge.
func Features(g wl.LabeledGraph) map[LabelPair]float64 {
	h := make(map[LabelPair]float64)
	for u, nbrs := range g.Edges {
		for _, v := range nbrs {
			if u > v && contains(g.Edges[v], u) {
				continue // counted from v
			}
			h[pair(g.Labels[u], g.Labels[v])]++
		}
	}

	return h
}

func pair(a, b int) LabelPair {
	if a > b {
		a, b = b, a
	}

	return LabelPair{Lo: a, Hi: b}
}

// contains reports whether sorted ids holds id.
func contains(ids []string, id string) bool {
	i := sort.SearchStrings(ids, id)

	return i < len(ids) && ids[i] == id
}
