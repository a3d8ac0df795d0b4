package blocknet

import (
	"fmt"
	"slices"
	"sort"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/blocknet/core"
)

// mutation guard states
const (
	stateIdle int32 = iota
	stateMutating
)

// Topology maintains the connected components of a dynamic node set.
//
// A Topology is owned by one goroutine. The guard rejects nested and
// overlapping mutations with ErrReentrantMutation but does not make
// concurrent queries safe against a running mutation.
type Topology struct {
	state atomic.Int32

	// adjacency, keyed by Node.Key
	graph *core.Graph
	nodes map[string]Node
	// owning network per key
	nodeNet map[string]Network
	members map[Network]map[string]Node
	// registration sequence and order of live networks
	seq     map[Network]uint64
	order   []Network
	nextSeq uint64

	factory   NetworkFactory
	logger    *zap.Logger
	tracer    trace.Tracer
	listeners []TopologyListener

	pending []Event // events of the running mutation
}

// NewTopology returns an empty Topology.
// Returns ErrOptionViolation if any Option is invalid.
func NewTopology(opts ...Option) (*Topology, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	t := &Topology{
		graph:   core.NewGraph(),
		nodes:   make(map[string]Node),
		nodeNet: make(map[string]Network),
		members: make(map[Network]map[string]Node),
		seq:     make(map[Network]uint64),
		factory: o.factory,
		logger:  o.logger,
		tracer:  o.tracer,
	}
	for _, l := range o.listeners {
		t.Subscribe(l)
	}

	return t, nil
}

// Subscribe appends l to the listener list. Subscribing the same listener
// twice has no effect.
func (t *Topology) Subscribe(l TopologyListener) {
	if l == nil || slices.Contains(t.listeners, l) {
		return
	}
	t.listeners = append(t.listeners, l)
}

// Unsubscribe removes l. Unknown listeners are ignored.
func (t *Topology) Unsubscribe(l TopologyListener) {
	if i := slices.Index(t.listeners, l); i >= 0 {
		t.listeners = slices.Delete(t.listeners, i, i+1)
	}
}

// begin acquires the mutation guard.
func (t *Topology) begin() error {
	if !t.state.CompareAndSwap(stateIdle, stateMutating) {
		return ErrReentrantMutation
	}
	t.pending = t.pending[:0]

	return nil
}

// end releases the mutation guard.
func (t *Topology) end() {
	clear(t.pending)
	t.pending = t.pending[:0]
	t.state.Store(stateIdle)
}

// Mutating reports whether a mutation is in progress.
func (t *Topology) Mutating() bool { return t.state.Load() == stateMutating }

func (t *Topology) emit(kind EventKind, net Network, n Node) {
	t.pending = append(t.pending, Event{Kind: kind, Network: net, Node: n})
}

// flush delivers pending events to every listener, event by event.
// The first listener error stops listener delivery; merge hooks still run.
func (t *Topology) flush() error {
	ls := slices.Clone(t.listeners)
	var failed error
	for _, e := range t.pending {
		if e.Kind == networkMerged {
			e.Network.MergeInto(e.into)
			continue
		}
		if failed != nil {
			continue
		}
		for _, l := range ls {
			if err := e.deliver(l); err != nil {
				failed = fmt.Errorf("%w: %s: %w", ErrListener, e.Kind, err)
				break
			}
		}
	}

	return failed
}

// register adds an empty network at the end of the registration order.
func (t *Topology) register(net Network) {
	t.members[net] = make(map[string]Node)
	t.seq[net] = t.nextSeq
	t.nextSeq++
	t.order = append(t.order, net)
}

// deregister drops net from every index.
func (t *Topology) deregister(net Network) {
	delete(t.members, net)
	delete(t.seq, net)
	if i := slices.Index(t.order, net); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
}

// place records n as a member of net.
func (t *Topology) place(net Network, n Node) {
	k := n.Key()
	t.members[net][k] = n
	t.nodeNet[k] = net
}

// sortedMembers lists the members of net by key.
func (t *Topology) sortedMembers(net Network) []Node {
	m := t.members[net]
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Node, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}

	return out
}

// Networks returns the registered networks in registration order.
func (t *Topology) Networks() []Network {
	return slices.Clone(t.order)
}

// IsRegistered reports whether net is a live network of t.
func (t *Topology) IsRegistered(net Network) bool {
	_, ok := t.members[net]
	return ok
}

// MembersOf returns the members of net sorted by key.
// Returns ErrNetworkNotFound for a handle that is not registered.
func (t *Topology) MembersOf(net Network) ([]Node, error) {
	if !t.IsRegistered(net) {
		return nil, ErrNetworkNotFound
	}

	return t.sortedMembers(net), nil
}

// HasMember reports whether n belongs to net.
func (t *Topology) HasMember(net Network, n Node) bool {
	if n == nil {
		return false
	}
	_, ok := t.members[net][n.Key()]

	return ok
}

// NetworkOf returns the network owning n.
func (t *Topology) NetworkOf(n Node) (Network, bool) {
	if n == nil {
		return nil, false
	}
	net, ok := t.nodeNet[n.Key()]

	return net, ok
}

// Contains reports whether a node with n's key is registered.
func (t *Topology) Contains(n Node) bool {
	if n == nil {
		return false
	}
	_, ok := t.nodes[n.Key()]

	return ok
}

// Lookup returns the registered node stored under key.
func (t *Topology) Lookup(key string) (Node, bool) {
	n, ok := t.nodes[key]
	return n, ok
}

// NeighborsOf returns the nodes sharing an edge with n, sorted by key.
// Returns ErrNodeNotFound for an unknown node.
func (t *Topology) NeighborsOf(n Node) ([]Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	ids, err := t.graph.NeighborIDs(n.Key())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, n.Key())
	}
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = t.nodes[id]
	}

	return out, nil
}

// Size returns the number of registered nodes.
func (t *Topology) Size() int { return len(t.nodes) }

// EdgeCount returns the number of stored undirected edges.
func (t *Topology) EdgeCount() int { return t.graph.EdgeCount() }
