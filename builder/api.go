// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg,
//     runs cons in order, then labels every vertex with the configured scheme.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlkernel/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// finally assigns labels. Any error is wrapped with the context
// "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - Labeling: O(V log V).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if err := applyLabels(g, cfg); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildDataset builds one graph per constructor, sharing bopts (and therefore
// a single RNG stream when seeded). Graph i is built from cons[i] alone.
func BuildDataset(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) ([]*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	out := make([]*core.Graph, 0, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDataset: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		g := core.NewGraph(gopts...)
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildDataset[%d]: %w", i, err)
		}
		if err := applyLabels(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildDataset[%d]: %w", i, err)
		}
		out = append(out, g)
	}

	return out, nil
}

// addEdge adds u→v and, for directed graphs, the reverse arc so that the
// fixture's neighborhoods stay symmetric.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, v, u, err)
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) in index order.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
