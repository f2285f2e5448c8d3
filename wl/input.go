// SPDX-License-Identifier: MIT

package wl

import (
	"sort"

	"k8s.io/klog/v2"
)

// nilable is implemented by pointer graphs (e.g. *core.Graph) that can
// report a typed nil hidden inside a Graph interface.
type nilable interface {
	IsNil() bool
}

// indexedGraph is the engine's internal view of one input graph. Node i is
// ids[i]; nbrs[i] lists the positions of its unique neighbors.
type indexedGraph struct {
	ids   []string
	raw   []string
	nbrs  [][]int
	edges map[string][]string // unique sorted neighbor IDs, handed to base kernels
}

// parseBatch validates X and indexes every non-empty element. Empty and nil
// elements are skipped with a warning; an empty result is a validation error.
func parseBatch(X []Graph) ([]*indexedGraph, error) {
	if X == nil {
		return nil, validationf("input must be a non-nil collection of graphs")
	}

	out := make([]*indexedGraph, 0, len(X))
	for idx, x := range X {
		if isNilGraph(x) {
			klog.Warningf("wl: skipping nil graph at index %d", idx)
			continue
		}
		if t, ok := asTuple(x); ok && (t.Edges == nil) != (t.Labels == nil) {
			return nil, validationf("element %d: tuple must carry both edges and labels", idx)
		}

		edges, labels := x.EdgeStructure(), x.NodeLabels()
		if len(edges) == 0 && len(labels) == 0 {
			klog.Warningf("wl: skipping empty graph at index %d", idx)
			continue
		}

		g, err := indexGraph(idx, edges, labels)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}

	if len(out) == 0 {
		return nil, validationf("batch holds no non-empty graphs (%d elements given)", len(X))
	}

	return out, nil
}

// indexGraph checks that edges and labels share one key set and that every
// neighbor is a known node, then builds the positional form. Duplicate
// neighbor entries collapse to one.
func indexGraph(idx int, edges map[string][]string, labels map[string]string) (*indexedGraph, error) {
	if len(edges) != len(labels) {
		return nil, validationf("element %d: %d adjacency keys but %d labels", idx, len(edges), len(labels))
	}

	ids := make([]string, 0, len(labels))
	for id := range labels {
		if _, ok := edges[id]; !ok {
			return nil, validationf("element %d: node %q has a label but no adjacency entry", idx, id)
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	g := &indexedGraph{
		ids:   ids,
		raw:   make([]string, len(ids)),
		nbrs:  make([][]int, len(ids)),
		edges: make(map[string][]string, len(ids)),
	}
	for i, id := range ids {
		g.raw[i] = labels[id]

		seen := make(map[int]struct{}, len(edges[id]))
		list := make([]int, 0, len(edges[id]))
		for _, nb := range edges[id] {
			j, ok := pos[nb]
			if !ok {
				return nil, validationf("element %d: node %q lists unknown neighbor %q", idx, id, nb)
			}
			if _, dup := seen[j]; dup {
				continue
			}
			seen[j] = struct{}{}
			list = append(list, j)
		}
		sort.Ints(list)
		g.nbrs[i] = list

		names := make([]string, len(list))
		for k, j := range list {
			names[k] = ids[j]
		}
		g.edges[id] = names
	}

	return g, nil
}

func isNilGraph(x Graph) bool {
	if x == nil {
		return true
	}
	if n, ok := x.(nilable); ok {
		return n.IsNil()
	}
	if t, ok := x.(*Tuple); ok {
		return t == nil
	}

	return false
}

func asTuple(x Graph) (Tuple, bool) {
	switch t := x.(type) {
	case Tuple:
		return t, true
	case *Tuple:
		return *t, true
	}

	return Tuple{}, false
}
