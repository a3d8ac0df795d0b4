package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/blocknet/bfs"
	"github.com/katalvlaran/blocknet/core"
)

// build creates an undirected graph from "U-V" pairs, adding vertices on demand.
func build(pairs ...string) *core.Graph {
	g := core.NewGraph()
	for _, p := range pairs {
		uv := strings.SplitN(p, "-", 2)
		_ = g.AddVertex(uv[0])
		if len(uv) == 2 {
			_ = g.AddVertex(uv[1])
			_ = g.AddEdge(uv[0], uv[1])
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := build("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := build("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := build("A-B", "B-C", "C-D", "D-A")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
	// first-seen predecessor wins: B is expanded before D
	if p := res.Parent["C"]; p != "B" {
		t.Errorf("Parent[C] = %s; want B", p)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := build("X-Y", "P-Q")

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	if resX.Reached("P") {
		t.Errorf("From X: P must not be reached")
	}
	resP, _ := bfs.BFS(g, "P")
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("From P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := build("A-B", "B-C")
	// depth = 1 should only visit A,B
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges in one direction only.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := build("A-B", "B-C")
	noBC := bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	})
	res, _ := bfs.BFS(g, "A", noBC)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
	// the reverse direction C→B stays open
	res, _ = bfs.BFS(g, "C", noBC)
	if want := []string{"C", "B", "A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor reverse: got %v; want %v", res.Order, want)
	}
}

// TestBFS_StopAt ends the walk once the target is discovered.
func TestBFS_StopAt(t *testing.T) {
	g := build("A-B", "B-C", "C-D", "B-E")
	res, err := bfs.BFS(g, "A", bfs.WithStopAt("C"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reached("C") || res.Depth["C"] != 2 {
		t.Errorf("StopAt: C reached=%v depth=%d; want true,2", res.Reached("C"), res.Depth["C"])
	}
	if res.Reached("D") {
		t.Errorf("StopAt: D must not be discovered after the stop")
	}
	path, err := res.PathTo("C")
	if err != nil || !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("StopAt PathTo: got %v, %v", path, err)
	}

	// stopping at the start returns immediately
	res, _ = bfs.BFS(g, "A", bfs.WithStopAt("A"))
	if len(res.Depth) != 1 {
		t.Errorf("StopAt start: discovered %d vertices; want 1", len(res.Depth))
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := build("A-B", "B-C")

	var enq, deq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths A@0, B@1, C@2
	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitError propagates a hook failure.
func TestBFS_OnVisitError(t *testing.T) {
	g := build("A-B")
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("OnVisit error: want boom, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := build("X", "Y")
	res, _ := bfs.BFS(g, "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	if _, err := res.PathTo("Y"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	pairs := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		pairs = append(pairs, fmt.Sprintf("v%d-v%d", i, i+1))
	}
	g := build(pairs...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := build("A-B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
