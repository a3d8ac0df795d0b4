// Package location provides block nodes positioned on an integer grid for
// use with blocknet.Topology.
//
// What:
//
//   - Vec3i: integer x,y,z position with face adjacency helpers.
//   - Side / SideMask: the six block faces and sets of them.
//   - LocationNode: connects to same-position or face-adjacent LocationNodes.
//   - SidedLocationNode: connects only through matching exposed faces.
//   - SideConnectivityFilter: an edge filter that forces a path to enter a
//     target block through one face.
//
// Faces and axes:
//
//	Top    +Y      Bottom -Y
//	Right  +X      Left   -X
//	Back   +Z      Front  -Z
//
// Example:
//
//	topo := blocknet.NewTopology()
//	_ = topo.AddNode(location.NewLocationNode(location.V(0, 0, 0)))
//	_ = topo.AddNode(location.NewLocationNode(location.V(0, 0, 1)))
//	// one network, distance 1
package location
