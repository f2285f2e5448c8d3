// SPDX-License-Identifier: MIT

package wl

import (
	"context"

	"github.com/katalvlaran/wlkernel/matrix"
)

// Graph is the read-only view the engine needs from an input graph.
// *core.Graph implements it.
//
// EdgeStructure maps every node ID to its neighbor IDs; isolated nodes map
// to an empty collection. NodeLabels maps the same key set to raw labels.
type Graph interface {
	EdgeStructure() map[string][]string
	NodeLabels() map[string]string
}

// Tuple is the bare (structure, labels[, edge labels]) form of a graph.
// EdgeLabels are accepted and ignored by the engine.
type Tuple struct {
	Edges      map[string][]string
	Labels     map[string]string
	EdgeLabels map[[2]string]string
}

// EdgeStructure implements Graph.
func (t Tuple) EdgeStructure() map[string][]string { return t.Edges }

// NodeLabels implements Graph.
func (t Tuple) NodeLabels() map[string]string { return t.Labels }

// LabeledGraph is one graph as seen by a base kernel at a given round:
// unique, sorted neighbor IDs for every node and the node's current code.
// Edges may be shared between rounds and must be treated as read-only.
type LabeledGraph struct {
	Edges  map[string][]string
	Labels map[string]int
}

// Dataset is an ordered batch of relabeled graphs; position i corresponds to
// the i-th non-empty input graph.
type Dataset []LabeledGraph

// BaseKernel computes similarities between relabeled graphs. The engine
// builds one instance per round and never shares an instance between rounds.
//
// FitTransform and Transform return n×n and n_query×n_fit matrices
// respectively. Diagonal returns the self-similarities of the fitted dataset
// and of the most recently transformed one (nil before any Transform).
type BaseKernel interface {
	Fit(ctx context.Context, ds Dataset) error
	FitTransform(ctx context.Context, ds Dataset) (*matrix.Dense, error)
	Transform(ctx context.Context, ds Dataset) (*matrix.Dense, error)
	Diagonal() (fit, query []float64, err error)
}

// Settings are handed to the Factory for every round. Normalize is always
// false: the engine normalizes once, after summing all rounds.
type Settings struct {
	Normalize   bool
	Verbose     bool
	Concurrency int
}

// Factory builds a fresh, unfitted base kernel.
type Factory func(Settings) (BaseKernel, error)
