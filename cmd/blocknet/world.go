package main

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/blocknet/blocknet"
	"github.com/katalvlaran/blocknet/layout"
)

// world serializes access to a Topology shared by the watch loop and the
// HTTP handlers.
type world struct {
	mu    sync.RWMutex
	topo  *blocknet.Topology
	nodes []blocknet.Node // what the topology currently holds
}

// apply brings the topology in line with nodes: removals first, then
// insertions. On failure w.nodes still matches the topology, so the next
// apply diffs against what was really applied.
func (w *world) apply(nodes []blocknet.Node) (removed, added int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rm, add := layout.Diff(w.nodes, nodes)
	if err := w.topo.RemoveNodes(rm...); err != nil {
		w.settle(add)
		return 0, 0, fmt.Errorf("apply removals: %w", err)
	}
	if err := w.topo.AddNodes(add...); err != nil {
		w.settle(add)
		return len(rm), 0, fmt.Errorf("apply additions: %w", err)
	}
	w.nodes = nodes
	return len(rm), len(add), nil
}

// settle rebuilds w.nodes from the nodes the topology still contains.
// A node whose listener delivery failed is in the topology and is kept.
func (w *world) settle(add []blocknet.Node) {
	var kept []blocknet.Node
	for _, n := range append(slices.Clone(w.nodes), add...) {
		if w.topo.Contains(n) {
			kept = append(kept, n)
		}
	}
	w.nodes = kept
}

// reload parses the layout at path and applies it.
func (w *world) reload(path string) (removed, added int, err error) {
	l, err := layout.Load(path)
	if err != nil {
		return 0, 0, err
	}
	nodes, err := l.Nodes()
	if err != nil {
		return 0, 0, err
	}
	return w.apply(nodes)
}

// clear drops every block, as when the layout file is deleted.
func (w *world) clear() (removed int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	removed = w.topo.Size()
	err = w.topo.Reset()
	w.nodes = nil
	return removed, err
}

func (w *world) view() networksView {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return snapshot(w.topo)
}
