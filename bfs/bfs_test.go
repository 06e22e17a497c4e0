package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/floodflow/bfs"
	"github.com/katalvlaran/floodflow/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.BFS(g, "A", bfs.WithMinCapacity(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative capacity: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_DirectedDepths checks that arcs are followed in their direction only.
func TestBFS_DirectedDepths(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, 1)
	_, _ = g.AddEdge("B", "C", 1, 1)
	_, _ = g.AddEdge("A", "D", 1, 1)
	_, _ = g.AddEdge("E", "A", 1, 1)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["C"]; d != 2 {
		t.Errorf("Depth[C] = %d; want 2", d)
	}
	if res.Reached("E") {
		t.Errorf("E reached against arc direction")
	}
	path, err := res.PathTo("C")
	if err != nil || !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v, %v", path, err)
	}
	if _, err = res.PathTo("E"); err == nil {
		t.Errorf("PathTo(E): want error")
	}
}

// TestBFS_MinCapacity skips arcs that cannot carry flow.
func TestBFS_MinCapacity(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, 0)
	_, _ = g.AddEdge("A", "C", 1, 5)
	_, _ = g.AddEdge("C", "B", 1, 5)

	res, err := bfs.BFS(g, "A", bfs.WithMinCapacity(1))
	if err != nil {
		t.Fatal(err)
	}
	if d := res.Depth["B"]; d != 2 {
		t.Errorf("Depth[B] = %d; want 2 via C", d)
	}
}

// TestBFS_MaxDepthAndHooks covers depth limiting, OnVisit and cancellation.
func TestBFS_MaxDepthAndHooks(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, 1)
	_, _ = g.AddEdge("B", "C", 1, 1)
	_, _ = g.AddEdge("C", "D", 1, 1)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached("D") || !res.Reached("C") {
		t.Errorf("MaxDepth(2): order %v", res.Order)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit: want stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: want context.Canceled, got %v", err)
	}
}
