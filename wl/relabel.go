// SPDX-License-Identifier: MIT

package wl

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/sync/errgroup"
)

// signature renders "<own>,[<n1>, <n2>, ...]" with nbrs sorted in place.
func signature(own int, nbrs []int) string {
	sort.Ints(nbrs)

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(own))
	sb.WriteString(",[")
	for i, c := range nbrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(']')

	return sb.String()
}

// graphSignatures computes the signature of every node of g from the
// previous round's codes.
func graphSignatures(g *indexedGraph, prev []int) []string {
	out := make([]string, len(g.ids))
	buf := make([]int, 0, 8)
	for i, nb := range g.nbrs {
		buf = buf[:0]
		for _, j := range nb {
			buf = append(buf, prev[j])
		}
		out[i] = signature(prev[i], buf)
	}

	return out
}

// relabelRound runs one refinement round over the whole batch. Signatures
// are computed per graph in parallel; codes are then assigned sequentially
// in sorted signature order so the result does not depend on scheduling.
func relabelRound(ctx context.Context, graphs []*indexedGraph, prev [][]int, dict *labelDict, next *int, limit int) ([][]int, int, error) {
	sigs := make([][]string, len(graphs))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for gi := range graphs {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sigs[gi] = graphSignatures(graphs[gi], prev[gi])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	set := treeset.NewWithStringComparator()
	for _, s := range sigs {
		for _, sig := range s {
			set.Add(sig)
		}
	}
	added := dict.assign(set, next)

	out := make([][]int, len(graphs))
	for gi, s := range sigs {
		codes := make([]int, len(s))
		for i, sig := range s {
			codes[i] = dict.codes[sig]
		}
		out[gi] = codes
	}

	return out, added, nil
}

// toDataset pairs each graph's structure with one round's codes.
func toDataset(graphs []*indexedGraph, labeling [][]int) Dataset {
	ds := make(Dataset, len(graphs))
	for gi, g := range graphs {
		labels := make(map[string]int, len(g.ids))
		for i, id := range g.ids {
			labels[id] = labeling[gi][i]
		}
		ds[gi] = LabeledGraph{Edges: g.edges, Labels: labels}
	}

	return ds
}
