// SPDX-License-Identifier: MIT

// Package vertexhist provides the vertex-histogram base kernel: two graphs
// are compared by the dot product of their label-count vectors. Used as the
// per-round base kernel of wl.Kernel it yields the Weisfeiler–Lehman subtree
// kernel.
package vertexhist

import (
	"github.com/katalvlaran/wlkernel/internal/histogram"
	"github.com/katalvlaran/wlkernel/wl"
)

// Name identifies this kernel in logs and configuration.
const Name = "vertex_histogram"

// Kernel is a vertex-histogram base kernel.
type Kernel = histogram.Kernel[int]

// New returns an unfitted vertex-histogram kernel.
func New(s wl.Settings) *Kernel {
	return histogram.New(Name, s, Features)
}

// Factory is a wl.Factory producing vertex-histogram kernels.
func Factory(s wl.Settings) (wl.BaseKernel, error) {
	return New(s), nil
}

// Features counts how many nodes carry each label code.
func Features(g wl.LabeledGraph) map[int]float64 {
	h := make(map[int]float64, len(g.Labels))
	for _, code := range g.Labels {
		h[code]++
	}

	return h
}
