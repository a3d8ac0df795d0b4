package blocknet

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/blocknet/bfs"
)

// AddNode inserts n, links it to every registered node it connects to and
// folds all touched networks into one.
//
// Adding a key that is already registered is a no-op and emits nothing.
// Returns ErrReentrantMutation, ErrNilNode, ErrEmptyKey, or a listener
// failure wrapped in ErrListener.
// Complexity: O(N) connectivity probes plus O(M) moves for merged members.
func (t *Topology) AddNode(n Node) (err error) {
	if err = t.begin(); err != nil {
		return err
	}
	defer t.end()
	span := t.startSpan(context.Background(), "Topology.AddNode", n)
	defer func() { finishSpan(span, err) }()

	if err = validNode(n); err != nil {
		return err
	}
	if !t.insert(n) {
		return nil
	}

	return t.flush()
}

// AddNodes adds ns in order, stopping at the first failure.
// Nodes before the failing index stay added.
func (t *Topology) AddNodes(ns ...Node) error {
	for i, n := range ns {
		if err := t.AddNode(n); err != nil {
			return fmt.Errorf("blocknet: add node at index %d: %w", i, err)
		}
	}

	return nil
}

// RemoveNode deletes the node with n's key and splits its network when the
// node was a cut vertex.
//
// Returns ErrReentrantMutation, ErrNilNode, ErrNodeNotFound, or a listener
// failure wrapped in ErrListener.
// Complexity: O(V+E) of the former network in the worst case, O(1) walks
// when the node had fewer than two neighbors.
func (t *Topology) RemoveNode(n Node) (err error) {
	if err = t.begin(); err != nil {
		return err
	}
	defer t.end()
	span := t.startSpan(context.Background(), "Topology.RemoveNode", n)
	defer func() { finishSpan(span, err) }()

	if n == nil {
		return ErrNilNode
	}
	if err = t.remove(n); err != nil {
		return err
	}

	return t.flush()
}

// RemoveNodes removes ns in order, stopping at the first failure.
func (t *Topology) RemoveNodes(ns ...Node) error {
	for i, n := range ns {
		if err := t.RemoveNode(n); err != nil {
			return fmt.Errorf("blocknet: remove node at index %d: %w", i, err)
		}
	}

	return nil
}

// ReplaceNode removes old and inserts repl as one mutation; listeners see
// the removal events followed by the insertion events. Use it when a block
// changes its connectivity in place.
func (t *Topology) ReplaceNode(old, repl Node) (err error) {
	if err = t.begin(); err != nil {
		return err
	}
	defer t.end()
	span := t.startSpan(context.Background(), "Topology.ReplaceNode", repl)
	defer func() { finishSpan(span, err) }()

	if old == nil {
		return ErrNilNode
	}
	if err = validNode(repl); err != nil {
		return err
	}
	if err = t.remove(old); err != nil {
		return err
	}
	t.insert(repl)
	t.logger.Info("node replaced",
		zap.String("old", old.Key()),
		zap.String("new", repl.Key()),
	)

	return t.flush()
}

// Reset removes every node as one mutation. For each network in
// registration order listeners see its members removed by key, then the
// network itself.
func (t *Topology) Reset() (err error) {
	if err = t.begin(); err != nil {
		return err
	}
	defer t.end()
	span := t.startSpan(context.Background(), "Topology.Reset", nil)
	defer func() { finishSpan(span, err) }()

	nets := slices.Clone(t.order)
	for _, net := range nets {
		for _, m := range t.sortedMembers(net) {
			t.emit(NodeRemoved, net, m)
		}
		t.deregister(net)
		t.emit(NetworkRemoved, net, nil)
	}
	t.graph.Clear()
	clear(t.nodes)
	clear(t.nodeNet)
	t.logger.Debug("topology reset", zap.Int("networks", len(nets)))

	return t.flush()
}

func validNode(n Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Key() == "" {
		return ErrEmptyKey
	}

	return nil
}

// insert links n and records the resulting events. Reports false when the
// key is already registered.
func (t *Topology) insert(n Node) bool {
	key := n.Key()
	if _, ok := t.nodes[key]; ok {
		return false
	}
	existing := t.graph.Vertices()
	_ = t.graph.AddVertex(key)
	t.nodes[key] = n

	var touched []Network
	for _, id := range existing {
		if !n.IsConnectedTo(t.nodes[id]) {
			continue
		}
		_ = t.graph.AddEdge(key, id)
		if net := t.nodeNet[id]; !slices.Contains(touched, net) {
			touched = append(touched, net)
		}
	}

	var target Network
	switch len(touched) {
	case 0:
		target = t.newNetwork()
		t.emit(NetworkAdded, target, nil)
		t.logger.Debug("network created", zap.Stringer("network", stringer(target)), zap.String("node", key))
	case 1:
		target = touched[0]
	default:
		target = t.merge(touched)
	}
	t.place(target, n)
	t.emit(NodeAdded, target, n)

	return true
}

// merge folds every touched network into the largest one, ties going to
// the earliest registered.
func (t *Topology) merge(touched []Network) Network {
	slices.SortFunc(touched, func(a, b Network) int {
		return cmp.Compare(t.seq[a], t.seq[b])
	})
	target := touched[0]
	for _, net := range touched[1:] {
		if len(t.members[net]) > len(t.members[target]) {
			target = net
		}
	}
	for _, net := range touched {
		if net == target {
			continue
		}
		moved := t.sortedMembers(net)
		for _, m := range moved {
			t.place(target, m)
			t.emit(NodeRemoved, net, m)
			t.emit(NodeAdded, target, m)
		}
		t.deregister(net)
		t.emit(NetworkRemoved, net, nil)
		t.pending = append(t.pending, Event{Kind: networkMerged, Network: net, into: target})
		t.logger.Debug("network merged",
			zap.Stringer("from", stringer(net)),
			zap.Stringer("into", stringer(target)),
			zap.Int("moved", len(moved)),
		)
	}

	return target
}

// remove unlinks n and records the resulting events.
func (t *Topology) remove(n Node) error {
	key := n.Key()
	stored, ok := t.nodes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}
	net := t.nodeNet[key]
	former, err := t.graph.RemoveVertex(key)
	if err != nil {
		return fmt.Errorf("blocknet: adjacency out of sync for %q: %w", key, err)
	}
	delete(t.nodes, key)
	delete(t.nodeNet, key)
	delete(t.members[net], key)
	t.emit(NodeRemoved, net, stored)

	if len(t.members[net]) == 0 {
		t.deregister(net)
		t.emit(NetworkRemoved, net, nil)
		t.logger.Debug("network destroyed", zap.Stringer("network", stringer(net)), zap.String("node", key))
		return nil
	}
	if len(former) < 2 {
		return nil
	}

	return t.split(net, former)
}

// split walks from each former neighbor not yet tagged with an origin and
// gives every group after the first a fresh network.
func (t *Topology) split(net Network, former []string) error {
	total := len(t.members[net])
	origin := make(map[string]string, total)
	var groups [][]string
	for _, start := range former {
		if _, tagged := origin[start]; tagged {
			continue
		}
		res, err := bfs.BFS(t.graph, start, bfs.WithOnVisit(func(id string, _ int) error {
			origin[id] = start
			return nil
		}))
		if err != nil {
			return fmt.Errorf("blocknet: split walk from %q: %w", start, err)
		}
		groups = append(groups, res.Order)
		if len(groups) == 1 && len(res.Order) == total {
			return nil
		}
	}

	for _, g := range groups[1:] {
		nn := t.newNetwork()
		t.emit(NetworkAdded, nn, nil)
		for _, id := range g {
			m := t.nodes[id]
			delete(t.members[net], id)
			t.place(nn, m)
			t.emit(NodeRemoved, net, m)
			t.emit(NodeAdded, nn, m)
		}
	}
	t.logger.Debug("network split",
		zap.Stringer("network", stringer(net)),
		zap.Int("groups", len(groups)),
	)

	return nil
}

// newNetwork registers a handle from the factory.
// A factory that returns nil or a live handle breaks the partition, so it
// panics.
func (t *Topology) newNetwork() Network {
	net := t.factory()
	if net == nil || t.IsRegistered(net) {
		panic("blocknet: network factory returned nil or a registered network")
	}
	t.register(net)

	return net
}

func (t *Topology) startSpan(ctx context.Context, name string, n Node) trace.Span {
	_, span := t.tracer.Start(ctx, name)
	if n != nil {
		span.SetAttributes(attribute.String("blocknet.node", n.Key()))
	}

	return span
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// stringer renders handles that do not implement fmt.Stringer.
func stringer(net Network) fmt.Stringer {
	if s, ok := net.(fmt.Stringer); ok {
		return s
	}

	return handleString{net}
}

type handleString struct{ net Network }

func (h handleString) String() string { return fmt.Sprintf("%T(%p)", h.net, h.net) }
