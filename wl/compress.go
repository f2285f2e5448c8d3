// SPDX-License-Identifier: MIT

package wl

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// labelDict is one round's inverse label dictionary: signature → code.
// Entries are never overwritten; fitSize marks how many were created at fit
// time, later entries were appended by Transform.
type labelDict struct {
	codes   map[string]int
	fitSize int
}

func newLabelDict() *labelDict {
	return &labelDict{codes: make(map[string]int)}
}

// assign walks values in ascending order and gives every value without a
// code the next code from the counter. It returns how many codes were added.
func (d *labelDict) assign(values *treeset.Set, next *int) int {
	added := 0
	it := values.Iterator()
	for it.Next() {
		key := it.Value().(string)
		if _, ok := d.codes[key]; ok {
			continue
		}
		d.codes[key] = *next
		*next++
		added++
	}

	return added
}

// freeze records the current size as the fit-time boundary.
func (d *labelDict) freeze() { d.fitSize = len(d.codes) }

func (d *labelDict) snapshot() map[string]int {
	out := make(map[string]int, len(d.codes))
	for k, v := range d.codes {
		out[k] = v
	}

	return out
}

// compressRaw is round 0: it collects the distinct raw labels of the batch,
// codes the unseen ones in sorted order and returns per-graph, per-node codes.
func compressRaw(graphs []*indexedGraph, dict *labelDict, next *int) ([][]int, int, error) {
	set := treeset.NewWithStringComparator()
	for _, g := range graphs {
		for _, l := range g.raw {
			set.Add(l)
		}
	}
	if set.Empty() {
		return nil, 0, validationf("no distinct labels in batch")
	}

	added := dict.assign(set, next)

	out := make([][]int, len(graphs))
	for gi, g := range graphs {
		codes := make([]int, len(g.raw))
		for i, l := range g.raw {
			codes[i] = dict.codes[l]
		}
		out[gi] = codes
	}

	return out, added, nil
}
