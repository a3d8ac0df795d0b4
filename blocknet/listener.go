package blocknet

// TopologyListener observes structural changes.
//
// Callbacks run synchronously on the mutating goroutine, in the order the
// changes happened, while the mutation guard is still held: queries are
// allowed, every mutating method fails with ErrReentrantMutation.
// A non-nil error stops delivery of the remaining events of that mutation
// and is returned to the caller wrapped in ErrListener; the structural
// change itself is already applied.
type TopologyListener interface {
	NetworkAdded(net Network) error
	NetworkRemoved(net Network) error
	NodeAdded(net Network, node Node) error
	NodeRemoved(net Network, node Node) error
}

// ListenerFuncs adapts plain functions to TopologyListener.
// Nil fields are skipped. Use it through a pointer so Unsubscribe can find it.
type ListenerFuncs struct {
	OnNetworkAdded   func(net Network) error
	OnNetworkRemoved func(net Network) error
	OnNodeAdded      func(net Network, node Node) error
	OnNodeRemoved    func(net Network, node Node) error
}

// NetworkAdded calls OnNetworkAdded.
func (f *ListenerFuncs) NetworkAdded(net Network) error {
	if f.OnNetworkAdded == nil {
		return nil
	}

	return f.OnNetworkAdded(net)
}

// NetworkRemoved calls OnNetworkRemoved.
func (f *ListenerFuncs) NetworkRemoved(net Network) error {
	if f.OnNetworkRemoved == nil {
		return nil
	}

	return f.OnNetworkRemoved(net)
}

// NodeAdded calls OnNodeAdded.
func (f *ListenerFuncs) NodeAdded(net Network, node Node) error {
	if f.OnNodeAdded == nil {
		return nil
	}

	return f.OnNodeAdded(net, node)
}

// NodeRemoved calls OnNodeRemoved.
func (f *ListenerFuncs) NodeRemoved(net Network, node Node) error {
	if f.OnNodeRemoved == nil {
		return nil
	}

	return f.OnNodeRemoved(net, node)
}

// EventKind names a structural change.
type EventKind uint8

const (
	// NetworkAdded: a component was created.
	NetworkAdded EventKind = iota + 1
	// NetworkRemoved: a component was destroyed.
	NetworkRemoved
	// NodeAdded: a node joined a component.
	NodeAdded
	// NodeRemoved: a node left a component.
	NodeRemoved

	// networkMerged runs the merge hook; never delivered to listeners.
	networkMerged
)

func (k EventKind) String() string {
	switch k {
	case NetworkAdded:
		return "network_added"
	case NetworkRemoved:
		return "network_removed"
	case NodeAdded:
		return "node_added"
	case NodeRemoved:
		return "node_removed"
	default:
		return "unknown"
	}
}

// Event is one recorded change. Node is nil for network events.
type Event struct {
	Kind    EventKind
	Network Network
	Node    Node

	into Network // merge hook target
}

// deliver sends e to l.
func (e Event) deliver(l TopologyListener) error {
	switch e.Kind {
	case NetworkAdded:
		return l.NetworkAdded(e.Network)
	case NetworkRemoved:
		return l.NetworkRemoved(e.Network)
	case NodeAdded:
		return l.NodeAdded(e.Network, e.Node)
	case NodeRemoved:
		return l.NodeRemoved(e.Network, e.Node)
	}

	return nil
}
