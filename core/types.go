// Package core defines the undirected adjacency store used by blocknet,
// and provides thread-safe primitives for building and querying it.
//
// A single sync.RWMutex guards both the vertex catalog and the adjacency
// buckets, so a vertex and its edges are always observed consistently.
//
// This file declares Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrLoopNotAllowed  - edge from a vertex to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is an undirected, unweighted adjacency store keyed by vertex ID.
//
// Every edge is recorded twice: adjacency[a][b] and adjacency[b][a].
// Self-loops are rejected. The zero value is not usable; call NewGraph.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	// adjacency[(from)ID][(to)ID] = struct{}{}; every vertex has a non-nil bucket.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
}
