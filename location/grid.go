package location

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("location: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("location: all rows must have the same length")
)

// Layer is a rectangular horizontal slice of the world at height Y.
// Row r of Cells maps to Z = Origin.Z + r and column c to X = Origin.X + c.
// Cells with value < 1 are empty; any other value places a block.
type Layer struct {
	Origin Vec3i
	Width  int
	Depth  int
	Cells  [][]int
}

// NewLayer validates and deep-copies cells into a Layer anchored at origin.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×D) time and memory.
func NewLayer(origin Vec3i, cells [][]int) (*Layer, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	d, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cp := make([][]int, d)
	for z := 0; z < d; z++ {
		cp[z] = make([]int, w)
		copy(cp[z], cells[z])
	}

	return &Layer{Origin: origin, Width: w, Depth: d, Cells: cp}, nil
}

// InBounds reports whether column c and row r lie within the layer.
// Complexity: O(1).
func (l *Layer) InBounds(c, r int) bool {
	return c >= 0 && c < l.Width && r >= 0 && r < l.Depth
}

// Filled reports whether the cell at column c, row r holds a block.
func (l *Layer) Filled(c, r int) bool {
	return l.InBounds(c, r) && l.Cells[r][c] >= 1
}

// Positions returns the world positions of filled cells in row-major order.
// Complexity: O(W×D).
func (l *Layer) Positions() []Vec3i {
	var out []Vec3i
	for r := 0; r < l.Depth; r++ {
		for c := 0; c < l.Width; c++ {
			if l.Filled(c, r) {
				out = append(out, l.Origin.Add(Vec3i{X: c, Z: r}))
			}
		}
	}

	return out
}

// Nodes builds one LocationNode per filled cell, in Positions order.
func (l *Layer) Nodes() []*LocationNode {
	pos := l.Positions()
	out := make([]*LocationNode, 0, len(pos))
	for _, p := range pos {
		out = append(out, NewLocationNode(p))
	}

	return out
}

// Islands groups filled cells into 4-connected regions, scanning in
// row-major order. It gives the expected partition of Nodes once they are
// added to a Topology, which makes it handy for checking one.
//
// Time:   O(W·D·4).
// Memory: O(W·D) for visited flags and output.
func (l *Layer) Islands() [][]Vec3i {
	seen := make([]bool, l.Width*l.Depth)
	idx := func(c, r int) int { return r*l.Width + c }
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	var comps [][]Vec3i
	for r := 0; r < l.Depth; r++ {
		for c := 0; c < l.Width; c++ {
			if !l.Filled(c, r) || seen[idx(c, r)] {
				continue
			}
			queue := [][2]int{{c, r}}
			seen[idx(c, r)] = true
			var comp []Vec3i
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, l.Origin.Add(Vec3i{X: u[0], Z: u[1]}))
				for _, d := range offsets {
					vc, vr := u[0]+d[0], u[1]+d[1]
					if !l.Filled(vc, vr) || seen[idx(vc, vr)] {
						continue
					}
					seen[idx(vc, vr)] = true
					queue = append(queue, [2]int{vc, vr})
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
