// Package core: adjacency store method implementations.
//
// This file provides thread-safe, O(1) (amortized) operations for vertex and
// edge management on the Graph type defined in types.go. Adjacency is stored as
// a nested map adjacency[from][to] = struct{}{}, mirrored for every edge, which
// gives constant-time existence, insertion and deletion.

package core

import "sort"

// AddVertex inserts a new isolated vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return nil // no-op for existing vertex
	}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// RemoveVertex deletes the vertex and every edge touching it, pruning the
// reciprocal entry in each former neighbor. The former neighbors are returned
// sorted by ID.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if it is absent.
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) RemoveVertex(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	bucket, exists := g.adjacency[id]
	if !exists {
		return nil, ErrVertexNotFound
	}
	former := make([]string, 0, len(bucket))
	for nbr := range bucket {
		delete(g.adjacency[nbr], id) // mirror entry
		former = append(former, nbr)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	sort.Strings(former)

	return former, nil
}

// AddEdge connects a and b in both directions.
// Both endpoints must already exist (ErrVertexNotFound) and differ
// (ErrLoopNotAllowed). Adding an existing edge is a no-op.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	from, okA := g.adjacency[a]
	to, okB := g.adjacency[b]
	if !okA || !okB {
		return ErrVertexNotFound
	}
	if _, exists := from[b]; exists {
		return nil
	}
	from[b] = struct{}{}
	to[a] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge disconnects a and b in both directions.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[a][b]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	g.edgeCount--

	return nil
}

// HasEdge reports whether a and b are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// NeighborIDs returns the IDs of all vertices adjacent to id, sorted ascending.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(bucket))
	for nbr := range bucket {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns total number of undirected edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Symmetric reports whether every stored entry adjacency[a][b] has its
// mirror adjacency[b][a]. It always holds for graphs mutated through the
// public API; tests use it as an invariant check.
// Complexity: O(V + E)
func (g *Graph) Symmetric() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for a, bucket := range g.adjacency {
		for b := range bucket {
			if _, ok := g.adjacency[b][a]; !ok {
				return false
			}
		}
	}

	return true
}

// Clear resets the graph to the empty state.
// Complexity: O(1)
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adjacency = make(map[string]map[string]struct{})
	g.edgeCount = 0
	g.mu.Unlock()
}
