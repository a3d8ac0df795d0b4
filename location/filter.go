package location

import "github.com/katalvlaran/blocknet/blocknet"

// SideConnectivityFilter restricts path queries so the final hop enters the
// block at target through targetSide only.
//
// Edges between non-sided nodes are rejected. Edges that end anywhere other
// than target are accepted unchanged.
func SideConnectivityFilter(targetSide Side, target Vec3i) blocknet.EdgeFilter {
	want := targetSide.Mask()

	return func(from, to blocknet.Node) bool {
		src, ok := from.(*SidedLocationNode)
		if !ok {
			return false
		}
		dst, ok := to.(*SidedLocationNode)
		if !ok {
			return false
		}
		if dst.Pos != target {
			return true
		}
		if !dst.Sides.Has(targetSide) {
			return false
		}

		return areConnected(src.Pos, src.Sides, dst.Pos, want)
	}
}
