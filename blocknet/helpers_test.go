package blocknet_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blocknet/blocknet"
	"github.com/katalvlaran/blocknet/location"
)

// journal collects listener events and merge hooks in one ordered log.
type journal struct {
	lines []string
}

// labeled is a Network with a readable name that logs its merges.
type labeled struct {
	name string
	j    *journal
	into string
}

func (l *labeled) MergeInto(target blocknet.Network) {
	l.into = name(target)
	l.j.lines = append(l.j.lines, fmt.Sprintf("merge:%s>%s", l.name, l.into))
}

func (l *labeled) String() string { return l.name }

func name(n blocknet.Network) string {
	if l, ok := n.(*labeled); ok {
		return l.name
	}
	return fmt.Sprint(n)
}

// factory hands out n1, n2, ... in creation order.
func (j *journal) factory() blocknet.NetworkFactory {
	count := 0
	return func() blocknet.Network {
		count++
		return &labeled{name: fmt.Sprintf("n%d", count), j: j}
	}
}

func (j *journal) listener() *blocknet.ListenerFuncs {
	return &blocknet.ListenerFuncs{
		OnNetworkAdded: func(n blocknet.Network) error {
			j.lines = append(j.lines, "net+:"+name(n))
			return nil
		},
		OnNetworkRemoved: func(n blocknet.Network) error {
			j.lines = append(j.lines, "net-:"+name(n))
			return nil
		},
		OnNodeAdded: func(n blocknet.Network, node blocknet.Node) error {
			j.lines = append(j.lines, "node+:"+name(n)+":"+node.Key())
			return nil
		},
		OnNodeRemoved: func(n blocknet.Network, node blocknet.Node) error {
			j.lines = append(j.lines, "node-:"+name(n)+":"+node.Key())
			return nil
		},
	}
}

func (j *journal) take() []string {
	out := j.lines
	j.lines = nil
	return out
}

func (j *journal) count(prefix string) int {
	c := 0
	for _, l := range j.lines {
		if strings.HasPrefix(l, prefix) {
			c++
		}
	}
	return c
}

// newJournaled returns a Topology whose networks and events are journaled.
func newJournaled(t *testing.T, opts ...blocknet.Option) (*blocknet.Topology, *journal) {
	t.Helper()
	j := &journal{}
	opts = append([]blocknet.Option{
		blocknet.WithNetworkFactory(j.factory()),
		blocknet.WithListeners(j.listener()),
	}, opts...)
	topo, err := blocknet.NewTopology(opts...)
	require.NoError(t, err)
	return topo, j
}

func loc(x, y, z int) *location.LocationNode {
	return location.NewLocationNode(location.V(x, y, z))
}

// sided builds a node at x,y,z exposing mask.
func sided(x, y, z int, mask location.SideMask) *location.SidedLocationNode {
	return &location.SidedLocationNode{Pos: location.V(x, y, z), Sides: mask}
}

// networkNames lists the registered networks of topo in order.
func networkNames(topo *blocknet.Topology) []string {
	var out []string
	for _, n := range topo.Networks() {
		out = append(out, name(n))
	}
	return out
}

func keys(ns []blocknet.Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Key()
	}
	return out
}

// requirePartition checks that every registered node sits in exactly one
// registered, non-empty network and that the networks cover all nodes.
func requirePartition(t *testing.T, topo *blocknet.Topology) {
	t.Helper()
	seen := make(map[string]bool)
	for _, net := range topo.Networks() {
		members, err := topo.MembersOf(net)
		require.NoError(t, err)
		require.NotEmpty(t, members, "registered network %v is empty", net)
		for _, m := range members {
			require.False(t, seen[m.Key()], "node %s in two networks", m.Key())
			seen[m.Key()] = true
			owner, ok := topo.NetworkOf(m)
			require.True(t, ok)
			require.Equal(t, net, owner)
		}
	}
	require.Equal(t, topo.Size(), len(seen))
}
