package blocknet

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for topology operations.
var (
	// ErrReentrantMutation is returned when AddNode or RemoveNode is invoked
	// while another mutation is still in progress, typically from a listener.
	ErrReentrantMutation = errors.New("blocknet: mutation already in progress")

	// ErrNodeNotFound is returned when a node key is not registered.
	ErrNodeNotFound = errors.New("blocknet: node not found")

	// ErrNilNode is returned when a nil Node is passed to a mutation.
	ErrNilNode = errors.New("blocknet: node is nil")

	// ErrEmptyKey is returned when a Node reports an empty Key.
	ErrEmptyKey = errors.New("blocknet: node key is empty")

	// ErrNetworkNotFound is returned when a network handle is not registered.
	ErrNetworkNotFound = errors.New("blocknet: network not found")

	// ErrUnreachable is returned by Path.Err when no route exists.
	ErrUnreachable = errors.New("blocknet: target unreachable")

	// ErrListener wraps the first error a TopologyListener returns.
	ErrListener = errors.New("blocknet: listener failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("blocknet: invalid option supplied")
)

// Node is a participant in the topology.
//
// Two nodes are the same node iff their Keys are equal.
//
// IsConnectedTo may be asymmetric. Only the arriving node is asked: AddNode
// evaluates n.IsConnectedTo(existing) for every registered node and never
// the reverse. An edge found that way is stored in both directions, so
// neighbors, networks and paths treat it as undirected afterwards. With a
// one-way predicate the resulting topology depends on insertion order.
type Node interface {
	Key() string
	IsConnectedTo(other Node) bool
}

// Network is an opaque handle for one connected component.
//
// Handles are compared with ==, so implementations should be pointer types.
// MergeInto is called once per absorbed network during a merge, right after
// that network's removal was delivered, so callers can fold any state they
// keep on the handle into the survivor.
type Network interface {
	MergeInto(target Network)
}

// NetworkFactory creates a fresh handle for a new component.
type NetworkFactory func() Network

// EdgeFilter decides whether a path query may traverse the edge from → to.
// It is evaluated per direction and never affects partitioning.
type EdgeFilter func(from, to Node) bool

// BasicNetwork is the default Network: a uuid-tagged handle with no payload.
type BasicNetwork struct {
	ID uuid.UUID

	// MergedInto is set when this network is absorbed by another one.
	MergedInto Network
}

// NewBasicNetwork returns a BasicNetwork with a random ID.
// It is the default NetworkFactory.
func NewBasicNetwork() Network {
	return &BasicNetwork{ID: uuid.New()}
}

// MergeInto records the absorbing network.
func (n *BasicNetwork) MergeInto(target Network) { n.MergedInto = target }

func (n *BasicNetwork) String() string {
	return fmt.Sprintf("network(%s)", n.ID.String()[:8])
}

// Unreachable is the Distance of a Path with no route.
const Unreachable = -1

// Path is the outcome of a route query.
//
// Distance is the number of edges on a shortest route, 0 for identical
// endpoints, or Unreachable. Nodes holds the intermediate nodes strictly
// between the endpoints, in order from source to target.
type Path struct {
	Distance int
	Nodes    []Node
}

// Reachable reports whether a route was found.
func (p Path) Reachable() bool { return p.Distance != Unreachable }

// Err returns ErrUnreachable when no route was found, nil otherwise.
func (p Path) Err() error {
	if p.Reachable() {
		return nil
	}

	return ErrUnreachable
}

// unreachable is the canonical "no route" value.
func unreachable() Path { return Path{Distance: Unreachable} }
