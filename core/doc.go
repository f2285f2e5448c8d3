// Package core provides a thread-safe, in-memory labeled graph: the input
// collaborator of the Weisfeiler–Lehman engine in package wl.
//
// A Graph G = (V,E,ℓ) holds vertices with string IDs, a raw string label
// ℓ(v) per vertex, and edges between them:
//
//   - Undirected by default (WithDirected(true) keeps only from→to pointers).
//   - Parallel edges are rejected unless WithMultiEdges() is given.
//   - Self-loops are rejected unless WithLoops() is given.
//   - Edge IDs are collision-free, monotonic strings ("e1", "e2", …).
//   - muVert guards vertices and labels; muEdgeAdj guards edges and adjacency.
//
// The graph exposes the two read-only views the kernel consumes:
//
//	EdgeStructure() map[string][]string // every vertex is a key; unique, sorted neighbor IDs
//	NodeLabels()    map[string]string   // vertex ID → raw label
//
// Both snapshots share one key set, so isolated vertices appear in
// EdgeStructure with an empty neighbor slice. Parallel edges collapse to a
// single neighbor occurrence in EdgeStructure.
//
// Core Methods:
//
//	AddVertex(id string) error                 // O(1), idempotent
//	AddLabeledVertex(id, label string) error   // O(1), sets label
//	SetLabel(id, label string) error           // O(1)
//	Label(id string) (string, error)           // O(1)
//	RemoveVertex(id string) error              // O(deg(v))
//	AddEdge(from, to string) (string, error)   // O(1)†
//	RemoveEdge(edgeID string) error            // O(1)
//	NeighborIDs(id string) ([]string, error)   // O(d·log d)
//	Vertices() []string                        // O(V·log V)
//	Edges() []*Edge                            // O(E·log E)
//	Degree(id string) (int, error)             // O(d)
//	Clone() *Graph                             // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized: atomic ID generation + nested-map insertion.
package core
