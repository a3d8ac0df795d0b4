// Package layout loads block placements from YAML and turns them into
// blocknet nodes.
//
// A layout file lists single blocks and rectangular layers:
//
//	blocks:
//	  - at: [0, 0, 0]              # plain block, connects on every face
//	  - at: [0, 1, 0]
//	    sides: [top, bottom]       # sided block, connects through these faces
//	layers:
//	  - origin: [0, 0, 5]          # row r -> z+r, column c -> x+c
//	    cells:
//	      - [1, 1, 0]
//	      - [0, 1, 1]
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blocknet/blocknet"
	"github.com/katalvlaran/blocknet/location"
)

// ErrInvalidLayout is returned when a layout fails to decode or validate.
var ErrInvalidLayout = errors.New("layout: invalid layout")

var validate = validator.New()

// Layout is the decoded file.
type Layout struct {
	Blocks []Block `yaml:"blocks,omitempty" validate:"dive"`
	Layers []Layer `yaml:"layers,omitempty" validate:"dive"`
}

// Block places one block. Without Sides it becomes a LocationNode, with
// Sides a SidedLocationNode.
type Block struct {
	At    []int    `yaml:"at" validate:"required,len=3"`
	Sides []string `yaml:"sides,omitempty" validate:"omitempty,dive,oneof=top bottom left right front back all"`
}

// Layer fills plain blocks from a 2D grid; see location.Layer.
type Layer struct {
	Origin []int   `yaml:"origin" validate:"required,len=3"`
	Cells  [][]int `yaml:"cells" validate:"required,min=1"`
}

// Load reads and parses the layout at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML layout. Unknown keys are rejected and
// an empty document yields an empty Layout.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := validate.Struct(&l); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLayout, describe(err))
	}

	return &l, nil
}

// describe flattens validator errors into one line.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Layout.")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "len":
			msgs = append(msgs, fmt.Sprintf("%s must have %s coordinates", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s rows", field, e.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}

	return strings.Join(msgs, "; ")
}

// Nodes builds the nodes of l: blocks first, then layers, in file order.
// A key that appears twice is kept once, at its first position.
func (l *Layout) Nodes() ([]blocknet.Node, error) {
	var out []blocknet.Node
	seen := make(map[string]bool)
	push := func(n blocknet.Node) {
		if !seen[n.Key()] {
			seen[n.Key()] = true
			out = append(out, n)
		}
	}
	for i, b := range l.Blocks {
		n, err := b.node()
		if err != nil {
			return nil, fmt.Errorf("%w: blocks[%d]: %v", ErrInvalidLayout, i, err)
		}
		push(n)
	}
	for i, ly := range l.Layers {
		origin, err := location.FromSlice(ly.Origin)
		if err != nil {
			return nil, fmt.Errorf("%w: layers[%d]: %v", ErrInvalidLayout, i, err)
		}
		grid, err := location.NewLayer(origin, ly.Cells)
		if err != nil {
			return nil, fmt.Errorf("%w: layers[%d]: %v", ErrInvalidLayout, i, err)
		}
		for _, n := range grid.Nodes() {
			push(n)
		}
	}

	return out, nil
}

func (b Block) node() (blocknet.Node, error) {
	pos, err := location.FromSlice(b.At)
	if err != nil {
		return nil, err
	}
	if len(b.Sides) == 0 {
		return location.NewLocationNode(pos), nil
	}
	mask, err := location.ParseSideMask(b.Sides)
	if err != nil {
		return nil, err
	}

	return &location.SidedLocationNode{Pos: pos, Sides: mask}, nil
}

// Diff compares two node lists by key. removed keeps the order of old,
// added the order of cur.
func Diff(old, cur []blocknet.Node) (removed, added []blocknet.Node) {
	oldKeys := make(map[string]bool, len(old))
	for _, n := range old {
		oldKeys[n.Key()] = true
	}
	curKeys := make(map[string]bool, len(cur))
	for _, n := range cur {
		curKeys[n.Key()] = true
		if !oldKeys[n.Key()] {
			added = append(added, n)
		}
	}
	for _, n := range old {
		if !curKeys[n.Key()] {
			removed = append(removed, n)
		}
	}

	return removed, added
}
