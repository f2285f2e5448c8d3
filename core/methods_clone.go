package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, labeled vertices,
// edges and adjacency. nextEdgeID is carried so future edge IDs on the clone
// never collide with existing ones.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Label: v.Label}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To}
		clone.edges[eid] = ne
		linkEdge(clone, ne)
	}

	return clone
}
