package location

import (
	"fmt"

	"github.com/katalvlaran/blocknet/blocknet"
)

// LocationNode is a block that connects to any other LocationNode sharing
// its position or one of its six faces.
type LocationNode struct {
	Pos Vec3i
}

// NewLocationNode returns a LocationNode at pos.
func NewLocationNode(pos Vec3i) *LocationNode {
	return &LocationNode{Pos: pos}
}

// Key is the position in "x,y,z" form.
func (n *LocationNode) Key() string { return n.Pos.String() }

// IsConnectedTo reports whether other is a LocationNode at the same or a
// face-adjacent position. Sided nodes never match, which keeps the relation
// symmetric.
func (n *LocationNode) IsConnectedTo(other blocknet.Node) bool {
	o, ok := other.(*LocationNode)
	if !ok || o == nil {
		return false
	}
	if o.Pos == n.Pos {
		return true
	}
	_, adjacent := n.Pos.SideTowards(o.Pos)

	return adjacent
}

func (n *LocationNode) String() string { return n.Pos.String() }

// SidedLocationNode is a block that only connects through selected faces.
// Two sided nodes touch when the source exposes the face pointing at the
// target and the target exposes the opposite face.
type SidedLocationNode struct {
	Pos   Vec3i
	Sides SideMask
}

// NewSidedLocationNode returns a node at pos exposing the given faces.
func NewSidedLocationNode(pos Vec3i, sides ...Side) *SidedLocationNode {
	return &SidedLocationNode{Pos: pos, Sides: MaskOf(sides...)}
}

// Key is "x,y,z/mask", so the same position with different faces is a
// different node.
func (n *SidedLocationNode) Key() string {
	return fmt.Sprintf("%s/%d", n.Pos, n.Sides)
}

// IsConnectedTo reports whether other is a SidedLocationNode reachable
// through matching faces. Nodes stacked on one position connect when their
// masks overlap.
func (n *SidedLocationNode) IsConnectedTo(other blocknet.Node) bool {
	o, ok := other.(*SidedLocationNode)
	if !ok || o == nil {
		return false
	}
	if o.Pos == n.Pos {
		return n.Sides&o.Sides != 0
	}

	return areConnected(n.Pos, n.Sides, o.Pos, o.Sides)
}

// ConnectionSide returns the face of n that points at other.
// ok is false when other is not face-adjacent.
func (n *SidedLocationNode) ConnectionSide(other *SidedLocationNode) (Side, bool) {
	return n.Pos.SideTowards(other.Pos)
}

func (n *SidedLocationNode) String() string {
	return fmt.Sprintf("%s [%s]", n.Pos, n.Sides)
}

// areConnected checks face compatibility of two adjacent positions.
func areConnected(from Vec3i, fromSides SideMask, to Vec3i, toSides SideMask) bool {
	s, ok := from.SideTowards(to)
	if !ok {
		return false
	}

	return fromSides.Has(s) && toSides.Has(s.Reverse())
}
