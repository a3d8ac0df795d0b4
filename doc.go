// Package blocknet tracks which blocks of a voxel world form connected
// networks (pipes, cables, conveyor lines) while blocks are placed and
// broken, and answers shortest-route questions over them.
//
// Packages:
//
//	blocknet/  Topology: incremental merge on insert, split on removal,
//	           filtered shortest paths, ordered change events
//	location/  grid positions, block faces, plain and sided block nodes
//	core/      thread-safe undirected adjacency store keyed by string IDs
//	bfs/       breadth-first walker with hooks, depth limit, edge filter
//	layout/    YAML block layouts and layout diffs
//	metrics/   Prometheus collector fed by topology events
//	cmd/       the blocknet CLI (networks, path, watch)
//
// Quick ASCII example:
//
//	[0,0,0]─[0,0,1]─[0,0,2]      one network, distance 2 end to end
//	[0,0,0]    x    [0,0,2]      middle block broken: two networks
//
//	go get github.com/katalvlaran/blocknet
package blocknet
