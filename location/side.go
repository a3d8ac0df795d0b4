package location

import (
	"fmt"
	"strings"
)

// Side is one of the six faces of a block.
type Side uint8

const (
	// Top faces +Y.
	Top Side = iota
	// Left faces -X.
	Left
	// Right faces +X.
	Right
	// Front faces -Z.
	Front
	// Back faces +Z.
	Back
	// Bottom faces -Y.
	Bottom
)

// allSides fixes the iteration order of every side loop in this package.
var allSides = [...]Side{Top, Left, Right, Front, Back, Bottom}

// sideOffsets is indexed by Side.
var sideOffsets = [...]Vec3i{
	Top:    {0, 1, 0},
	Left:   {-1, 0, 0},
	Right:  {1, 0, 0},
	Front:  {0, 0, -1},
	Back:   {0, 0, 1},
	Bottom: {0, -1, 0},
}

var sideNames = [...]string{
	Top:    "top",
	Left:   "left",
	Right:  "right",
	Front:  "front",
	Back:   "back",
	Bottom: "bottom",
}

// Sides returns the six faces in a fixed order.
func Sides() []Side { return allSides[:] }

// Offset returns the unit vector pointing out of this face.
func (s Side) Offset() Vec3i { return sideOffsets[s] }

// Reverse returns the opposite face.
func (s Side) Reverse() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	case Front:
		return Back
	default:
		return Front
	}
}

// Mask returns the single-bit mask of this face.
func (s Side) Mask() SideMask { return SideMask(1) << s }

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}

	return fmt.Sprintf("Side(%d)", uint8(s))
}

// ParseSide parses a case-insensitive face name.
func ParseSide(name string) (Side, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range allSides {
		if sideNames[s] == n {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

// SideMask is a set of faces, one bit per Side.
type SideMask uint8

// AllSides has every face set.
const AllSides SideMask = 1<<len(allSides) - 1

// MaskOf builds a mask from the given faces.
func MaskOf(sides ...Side) SideMask {
	var m SideMask
	for _, s := range sides {
		m |= s.Mask()
	}

	return m
}

// ParseSideMask parses face names; "all" selects every face and an empty
// list also means every face.
func ParseSideMask(names []string) (SideMask, error) {
	if len(names) == 0 {
		return AllSides, nil
	}
	var m SideMask
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), "all") {
			m |= AllSides
			continue
		}
		s, err := ParseSide(n)
		if err != nil {
			return 0, err
		}
		m |= s.Mask()
	}

	return m, nil
}

// Has reports whether face s is in the mask.
func (m SideMask) Has(s Side) bool { return m&s.Mask() != 0 }

// Sides lists the faces in the mask in Sides() order.
func (m SideMask) Sides() []Side {
	var out []Side
	for _, s := range allSides {
		if m.Has(s) {
			out = append(out, s)
		}
	}

	return out
}

func (m SideMask) String() string {
	if m == AllSides {
		return "all"
	}
	names := make([]string, 0, len(allSides))
	for _, s := range m.Sides() {
		names = append(names, s.String())
	}

	return strings.Join(names, "|")
}
