// Package blocknet maintains the connected components ("networks") of a
// dynamic graph of blocks whose edges are decided by the nodes themselves.
//
// What:
//
//   - Topology.AddNode asks the new node n.IsConnectedTo(existing) for every
//     registered node, stores each edge in both directions and merges all
//     networks the new node touches. Registered nodes are never asked.
//   - Topology.RemoveNode unlinks a node and, when it was a cut vertex, splits
//     its network by walking from each former neighbor.
//   - Topology.Path / Distance / IsWithinDistance answer unweighted
//     shortest-route queries, optionally through an EdgeFilter.
//   - Topology.Reset drops every node in one mutation.
//   - TopologyListener receives ordered, synchronous change events.
//
// Why:
//
//   - Only the neighborhood of the changed node is inspected; the partition
//     is never rebuilt from scratch.
//   - Results are deterministic: existing nodes are probed in key order, merges
//     keep the largest network, splits hand the old network to the group of
//     the smallest former-neighbor key.
//
// Events of one mutation:
//
//	new isolated node   network_added(N), node_added(N, n)
//	merge into T        per moved member: node_removed(A, m), node_added(T, m)
//	                    then network_removed(A), then A.MergeInto(T)
//	split of N into M   network_added(M), per moved member:
//	                    node_removed(N, m), node_added(M, m)
//	reset               per network: node_removed(N, m) by key, network_removed(N)
//
// Events are recorded while the structure changes and delivered afterwards,
// so a listener always observes a consistent Topology. Listeners may query it
// but any mutation from a callback fails with ErrReentrantMutation.
//
// Complexity:
//
//   - AddNode: O(N) probes, plus O(M) moved members on merge.
//   - RemoveNode: O(V+E) of the affected network.
//   - Path: O(V+E) of the source network, early exit at the target.
//
// Observability: mutations log through zap (WithLogger, no-op by default)
// and open OpenTelemetry spans on the global tracer unless WithTracer is set.
package blocknet
