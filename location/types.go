// Package location defines grid positions, block faces and the sentinel
// errors for the location subpackage of github.com/katalvlaran/blocknet.
package location

import (
	"errors"
	"fmt"
)

// Sentinel errors for location parsing.
var (
	// ErrUnknownSide indicates a side name that is not one of the six faces.
	ErrUnknownSide = errors.New("location: unknown side")
	// ErrBadVector indicates a coordinate list that is not exactly x,y,z.
	ErrBadVector = errors.New("location: vector must have exactly 3 components")
)

// Vec3i is an integer grid position.
type Vec3i struct {
	X, Y, Z int
}

// V is shorthand for Vec3i{x, y, z}.
func V(x, y, z int) Vec3i { return Vec3i{X: x, Y: y, Z: z} }

// FromSlice builds a Vec3i from a 3-element slice.
// Returns ErrBadVector for any other length.
func FromSlice(c []int) (Vec3i, error) {
	if len(c) != 3 {
		return Vec3i{}, fmt.Errorf("%w: got %d", ErrBadVector, len(c))
	}

	return Vec3i{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Add returns v+o.
func (v Vec3i) Add(o Vec3i) Vec3i { return Vec3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3i) Sub(o Vec3i) Vec3i { return Vec3i{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// String formats the vector as "x,y,z"; node keys are built from it.
func (v Vec3i) String() string { return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z) }

// SideTowards returns the face of v that touches o.
// ok is false unless o is one of the six face-adjacent positions.
// Complexity: O(1).
func (v Vec3i) SideTowards(o Vec3i) (s Side, ok bool) {
	d := o.Sub(v)
	for _, s = range allSides {
		if s.Offset() == d {
			return s, true
		}
	}

	return 0, false
}

// Adjacent returns the six face-adjacent positions of v in Sides() order.
func (v Vec3i) Adjacent() []Vec3i {
	out := make([]Vec3i, 0, len(allSides))
	for _, s := range allSides {
		out = append(out, v.Add(s.Offset()))
	}

	return out
}
