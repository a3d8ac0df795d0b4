// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blocknet/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddVertex("X"))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("X", fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.True(t, g.Symmetric())
}

// TestConcurrentReadersAndWriter mixes readers with a single writer and
// checks the store stays symmetric.
func TestConcurrentReadersAndWriter(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			id := fmt.Sprintf("N%d", i)
			_ = g.AddVertex(id)
			_ = g.AddEdge("Base", id)
			if i%2 == 0 {
				_, _ = g.RemoveVertex(id)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _ = g.NeighborIDs("Base")
			_ = g.Vertices()
		}
	}()
	wg.Wait()

	require.True(t, g.Symmetric())
	d, err := g.Degree("Base")
	require.NoError(t, err)
	require.Equal(t, rounds/2, d)
}
