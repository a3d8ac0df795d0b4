package location_test

import (
	"fmt"

	"github.com/katalvlaran/blocknet/blocknet"
	"github.com/katalvlaran/blocknet/location"
)

// ExampleLayer_Islands compares the islands of a layer with the networks a
// Topology builds from the same blocks.
func ExampleLayer_Islands() {
	layer, _ := location.NewLayer(location.V(0, 0, 0), [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{0, 0, 2, 2, 0},
		{3, 0, 0, 0, 0},
	})
	fmt.Println("islands:", len(layer.Islands()))

	topo, _ := blocknet.NewTopology()
	for _, n := range layer.Nodes() {
		_ = topo.AddNode(n)
	}
	fmt.Println("networks:", len(topo.Networks()))
	// Output:
	// islands: 3
	// networks: 3
}
