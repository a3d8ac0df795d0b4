package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/blocknet/blocknet"
	"github.com/katalvlaran/blocknet/layout"
	"github.com/katalvlaran/blocknet/location"
)

// loadTopology builds a Topology from the layout at path.
func loadTopology(path string, opts ...blocknet.Option) (*blocknet.Topology, []blocknet.Node, error) {
	l, err := layout.Load(path)
	if err != nil {
		return nil, nil, err
	}
	nodes, err := l.Nodes()
	if err != nil {
		return nil, nil, err
	}
	opts = append([]blocknet.Option{blocknet.WithLogger(logger)}, opts...)
	topo, err := blocknet.NewTopology(opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := topo.AddNodes(nodes...); err != nil {
		return nil, nil, err
	}
	return topo, nodes, nil
}

// parseVec parses "x,y,z".
func parseVec(s string) (location.Vec3i, error) {
	parts := strings.Split(s, ",")
	coords := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return location.Vec3i{}, fmt.Errorf("position %q: %w", s, err)
		}
		coords = append(coords, v)
	}
	return location.FromSlice(coords)
}

// nodeAt returns the first node of the layout placed at pos.
func nodeAt(nodes []blocknet.Node, pos location.Vec3i) (blocknet.Node, error) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *location.LocationNode:
			if v.Pos == pos {
				return n, nil
			}
		case *location.SidedLocationNode:
			if v.Pos == pos {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("no block at %s: %w", pos, blocknet.ErrNodeNotFound)
}
