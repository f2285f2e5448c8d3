// SPDX-License-Identifier: MIT

package wl_test

import (
	"context"
	"sync"

	"github.com/katalvlaran/wlkernel/matrix"
	"github.com/katalvlaran/wlkernel/vertexhist"
	"github.com/katalvlaran/wlkernel/wl"
	"github.com/pkg/errors"
)

var errBoom = errors.New("boom")

// tup builds an undirected Tuple from an edge list and labels.
func tup(labels map[string]string, edges ...[2]string) wl.Tuple {
	adj := make(map[string][]string, len(labels))
	for id := range labels {
		adj[id] = []string{}
	}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	return wl.Tuple{Edges: adj, Labels: labels}
}

// spy wraps a vertex-histogram kernel and records what one round saw.
type spy struct {
	inner    *vertexhist.Kernel
	settings wl.Settings

	fitDS, queryDS wl.Dataset
	fitM, queryM   *matrix.Dense
}

func (s *spy) Fit(ctx context.Context, ds wl.Dataset) error {
	s.fitDS = ds
	return s.inner.Fit(ctx, ds)
}

func (s *spy) FitTransform(ctx context.Context, ds wl.Dataset) (*matrix.Dense, error) {
	s.fitDS = ds
	m, err := s.inner.FitTransform(ctx, ds)
	s.fitM = m
	return m, err
}

func (s *spy) Transform(ctx context.Context, ds wl.Dataset) (*matrix.Dense, error) {
	s.queryDS = ds
	m, err := s.inner.Transform(ctx, ds)
	s.queryM = m
	return m, err
}

func (s *spy) Diagonal() ([]float64, []float64, error) { return s.inner.Diagonal() }

// spies is a Factory that keeps every instance it built, in round order.
type spies struct {
	mu   sync.Mutex
	list []*spy
}

func (sp *spies) factory(s wl.Settings) (wl.BaseKernel, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	k := &spy{inner: vertexhist.New(s), settings: s}
	sp.list = append(sp.list, k)

	return k, nil
}

// last returns the instances of the most recent fit (rounds of them).
func (sp *spies) last(rounds int) []*spy {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	return sp.list[len(sp.list)-rounds:]
}

// failing fails in the given round's calls; other rounds behave like vertexhist.
// With transformOnly set, only Transform fails.
type failing struct {
	wl.BaseKernel
	fail          bool
	transformOnly bool
}

func (f *failing) Fit(ctx context.Context, ds wl.Dataset) error {
	if f.fail && !f.transformOnly {
		return errors.Wrap(errBoom, "fit")
	}
	return f.BaseKernel.Fit(ctx, ds)
}

func (f *failing) FitTransform(ctx context.Context, ds wl.Dataset) (*matrix.Dense, error) {
	if f.fail && !f.transformOnly {
		return nil, errBoom
	}
	return f.BaseKernel.FitTransform(ctx, ds)
}

func (f *failing) Transform(ctx context.Context, ds wl.Dataset) (*matrix.Dense, error) {
	if f.fail {
		return nil, errBoom
	}
	return f.BaseKernel.Transform(ctx, ds)
}

func failingFactory(failRound int, transformOnly bool) wl.Factory {
	var mu sync.Mutex
	n := 0
	return func(s wl.Settings) (wl.BaseKernel, error) {
		mu.Lock()
		defer mu.Unlock()
		k := &failing{BaseKernel: vertexhist.New(s), fail: n == failRound, transformOnly: transformOnly}
		n++
		return k, nil
	}
}

// labelsOf returns per-node codes of graph gi in every round, keyed by node.
func labelsOf(rounds []*spy, gi int, query bool) []map[string]int {
	out := make([]map[string]int, len(rounds))
	for i, s := range rounds {
		ds := s.fitDS
		if query {
			ds = s.queryDS
		}
		out[i] = ds[gi].Labels
	}

	return out
}
