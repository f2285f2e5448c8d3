// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs) and the read-only snapshots consumed
// by the kernel engine (EdgeStructure, NodeLabels).
// Determinism:
//   - NeighborIDs() and every EdgeStructure() slice are unique and sorted (lex asc).
// Concurrency:
//   - Reads hold muVert then muEdgeAdj read locks for a consistent snapshot.

package core

import "sort"

// NeighborIDs returns the unique neighbor IDs of id, sorted ascending.
// Parallel edges collapse to one occurrence; a self-loop lists id itself.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedNeighbors(g.adjacency[id]), nil
}

// EdgeStructure returns a snapshot mapping every vertex ID to its unique,
// sorted neighbor IDs. Isolated vertices map to an empty (non-nil) slice.
// Returned slices are freshly allocated and safe to retain.
//
// Complexity: O(V + E + Σ d·log d).
func (g *Graph) EdgeStructure() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		out[id] = sortedNeighbors(g.adjacency[id])
	}

	return out
}

// NodeLabels returns a snapshot mapping every vertex ID to its raw label.
// Its key set equals the key set of EdgeStructure.
//
// Complexity: O(V).
func (g *Graph) NodeLabels() map[string]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]string, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v.Label
	}

	return out
}

// sortedNeighbors flattens one adjacency row into sorted unique IDs.
func sortedNeighbors(row map[string]map[string]struct{}) []string {
	ids := make([]string, 0, len(row))
	for to, bucket := range row {
		if len(bucket) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids
}
