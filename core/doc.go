// Package core provides a thread-safe, in-memory undirected adjacency store
// with a minimal, composable API surface.
//
// The Graph G = (V,E) is the structural backbone of blocknet: vertices are
// string keys (blocknet uses Node.Key()), edges are unordered pairs recorded
// in both endpoint buckets:
//
//	adjacency[a][b] = struct{}{}
//	adjacency[b][a] = struct{}{}
//
// so the store is symmetric by construction, whatever predicate produced the
// edge.
//
// Why use core.Graph?
//
//   - Constant-time edge existence, insertion and deletion via nested maps.
//   - Deterministic iteration: Vertices() and NeighborIDs() return sorted results.
//   - RemoveVertex prunes every reciprocal entry and hands back the former
//     neighbors, which is exactly what split detection needs.
//   - Clear empties the store in place when the whole topology is reset.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1), idempotent
//	HasVertex(id string) bool                  // O(1)
//	RemoveVertex(id string) ([]string, error)  // O(d log d)
//
//	// Edge lifecycle
//	AddEdge(a, b string) error                 // O(1), idempotent
//	RemoveEdge(a, b string) error              // O(1)
//	HasEdge(a, b string) bool                  // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)   // O(d log d), unique, sorted
//	Degree(id string) (int, error)             // O(1)
//	Vertices() []string                        // O(V log V)
//	VertexCount(), EdgeCount() int             // O(1)
//	Symmetric() bool                           // O(V+E) invariant check
//
//	// Maintenance
//	Clear()                                    // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – AddEdge(v, v)
package core
