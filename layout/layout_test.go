package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blocknet/blocknet"
	"github.com/katalvlaran/blocknet/layout"
	"github.com/katalvlaran/blocknet/location"
)

const sample = `
blocks:
  - at: [0, 0, 0]
  - at: [0, 1, 0]
    sides: [top, bottom]
  - at: [0, 0, 0]
layers:
  - origin: [0, 0, 5]
    cells:
      - [1, 1, 0]
      - [0, 1, 1]
`

func keys(ns []blocknet.Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Key()
	}
	return out
}

func TestParse_Nodes(t *testing.T) {
	l, err := layout.Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, l.Blocks, 3)
	require.Len(t, l.Layers, 1)

	nodes, err := l.Nodes()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0,0,0", "0,1,0/33",
		"0,0,5", "1,0,5", "1,0,6", "2,0,6",
	}, keys(nodes))

	sided, ok := nodes[1].(*location.SidedLocationNode)
	require.True(t, ok)
	assert.Equal(t, location.MaskOf(location.Top, location.Bottom), sided.Sides)
}

func TestParse_Empty(t *testing.T) {
	l, err := layout.Parse(nil)
	require.NoError(t, err)
	nodes, err := l.Nodes()
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		msg  string
	}{
		{"ShortVector", "blocks:\n  - at: [1, 2]\n", "must have 3 coordinates"},
		{"MissingAt", "blocks:\n  - sides: [top]\n", "is required"},
		{"BadSide", "blocks:\n  - at: [0,0,0]\n    sides: [up]\n", "must be one of"},
		{"UnknownKey", "blokcs: []\n", "blokcs"},
		{"NoCells", "layers:\n  - origin: [0,0,0]\n", "is required"},
		{"Malformed", "blocks: [", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, layout.ErrInvalidLayout)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestNodes_RaggedLayer(t *testing.T) {
	l, err := layout.Parse([]byte("layers:\n  - origin: [0,0,0]\n    cells: [[1, 1], [1]]\n"))
	require.NoError(t, err)
	_, err = l.Nodes()
	require.ErrorIs(t, err, layout.ErrInvalidLayout)
	assert.ErrorContains(t, err, "layers[0]")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	l, err := layout.Load(path)
	require.NoError(t, err)
	assert.Len(t, l.Blocks, 3)

	_, err = layout.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	a := location.NewLocationNode(location.V(0, 0, 0))
	b := location.NewLocationNode(location.V(0, 0, 1))
	c := location.NewLocationNode(location.V(0, 0, 2))
	bSided := location.NewSidedLocationNode(location.V(0, 0, 1), location.Top)

	removed, added := layout.Diff([]blocknet.Node{a, b}, []blocknet.Node{a, bSided, c})
	assert.Equal(t, []string{"0,0,1"}, keys(removed))
	assert.Equal(t, []string{"0,0,1/1", "0,0,2"}, keys(added))

	removed, added = layout.Diff(nil, nil)
	assert.Empty(t, removed)
	assert.Empty(t, added)
}
