// Package bfs_test validates breadth-first traversal and hop-count shortest
// paths: completeness, frontier discipline, early stop, filtering, depth
// limits, hooks, and cancellation.
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dmelnyk/wander/bfs"
	"github.com/dmelnyk/wander/core"
	"github.com/dmelnyk/wander/metrics"
)

// buildDiamond returns the undirected diamond A-B(1), A-C(4), B-D(2), C-D(1).
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := g.AddVertex(id, nil); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "D", 2}, {"C", "D", 1},
	} {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

func TestTraverse_VisitsAllReachableOnce(t *testing.T) {
	g := buildDiamond(t)

	res, err := bfs.Traverse(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 4 {
		t.Fatalf("Order = %v; want all 4 reachable vertices", res.Order)
	}
	seen := make(map[string]bool)
	for _, id := range res.Order {
		if seen[id] {
			t.Fatalf("vertex %q visited twice in %v", id, res.Order)
		}
		seen[id] = true
	}
	// Level structure: A at 0, B and C at 1, D at 2.
	if res.Depth["A"] != 0 || res.Depth["B"] != 1 || res.Depth["C"] != 1 || res.Depth["D"] != 2 {
		t.Fatalf("unexpected depths: %v", res.Depth)
	}
}

func TestTraverse_DeterministicInsertionOrder(t *testing.T) {
	g := buildDiamond(t)

	// A's edges were inserted B-first, so BFS must visit B before C.
	res, err := bfs.Traverse(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "B", "C", "D"}
	for i, id := range want {
		if res.Order[i] != id {
			t.Fatalf("Order = %v; want %v", res.Order, want)
		}
	}
}

func TestTraverse_UnknownStartIsEmptyNotError(t *testing.T) {
	g := buildDiamond(t)

	res, err := bfs.Traverse(g, "ghost")
	if err != nil {
		t.Fatalf("unknown start must not error, got %v", err)
	}
	if len(res.Order) != 0 {
		t.Fatalf("Order = %v; want empty", res.Order)
	}
}

func TestTraverse_NilGraph(t *testing.T) {
	if _, err := bfs.Traverse(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Fatalf("err = %v; want ErrGraphNil", err)
	}
}

func TestTraverse_SelfLoopVisitedOnce(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("A", nil); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("A", "A", 1); err != nil {
		t.Fatal(err)
	}

	res, err := bfs.Traverse(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 1 || res.Order[0] != "A" {
		t.Fatalf("self-loop must not re-enqueue: Order = %v", res.Order)
	}
}

func TestTraverse_TargetStopsEarly(t *testing.T) {
	g := buildDiamond(t)

	res, err := bfs.Traverse(g, "A", bfs.WithTarget("B"))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Order[len(res.Order)-1]; got != "B" {
		t.Fatalf("traversal should end at target B, Order = %v", res.Order)
	}
	if len(res.Order) > 2 {
		t.Fatalf("expected early stop, Order = %v", res.Order)
	}
}

func TestTraverse_MaxDepthCutsFrontier(t *testing.T) {
	g := buildDiamond(t)

	res, err := bfs.Traverse(g, "A", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, reached := res.Depth["D"]; reached {
		t.Fatalf("D is at depth 2 and must be cut off, Depth = %v", res.Depth)
	}
	if len(res.Order) != 3 {
		t.Fatalf("Order = %v; want A, B, C", res.Order)
	}
}

func TestTraverse_NegativeMaxDepthIsOptionViolation(t *testing.T) {
	g := buildDiamond(t)
	if _, err := bfs.Traverse(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Fatalf("err = %v; want ErrOptionViolation", err)
	}
}

func TestTraverse_FilterNeighborPrunes(t *testing.T) {
	g := buildDiamond(t)

	res, err := bfs.Traverse(g, "A",
		bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	if err != nil {
		t.Fatal(err)
	}
	if res.Parent["D"] != "B" {
		t.Fatalf("with C pruned, D must be discovered via B; Parent = %v", res.Parent)
	}
}

func TestTraverse_HooksFireInStages(t *testing.T) {
	g := buildDiamond(t)

	var enq, deq, vis []string
	_, err := bfs.Traverse(g, "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id string, _ int) error { vis = append(vis, id); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(enq) != 4 || len(deq) != 4 || len(vis) != 4 {
		t.Fatalf("hook counts enq=%d deq=%d vis=%d; want 4 each", len(enq), len(deq), len(vis))
	}
}

func TestTraverse_OnVisitErrorAborts(t *testing.T) {
	g := buildDiamond(t)
	boom := errors.New("boom")

	_, err := bfs.Traverse(g, "A",
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "B" {
				return boom
			}
			return nil
		}))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want wrapped boom", err)
	}
}

func TestTraverse_ContextCancellation(t *testing.T) {
	g := buildDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := bfs.Traverse(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v; want context.Canceled", err)
	}
}

func TestTraverse_MetricsCollected(t *testing.T) {
	g := buildDiamond(t)
	var c metrics.Counters

	if _, err := bfs.Traverse(g, "A", bfs.WithMetrics(&c)); err != nil {
		t.Fatal(err)
	}
	if c.Operations == 0 || c.Comparisons == 0 {
		t.Fatalf("expected non-zero counters, got %+v", c)
	}
}

func TestShortestPath_HopMinimality(t *testing.T) {
	g := buildDiamond(t)

	path, _, err := bfs.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	// Two 2-hop paths exist (A-B-D and A-C-D); insertion order picks B.
	want := []string{"A", "B", "D"}
	if len(path) != len(want) {
		t.Fatalf("path = %v; want a 2-hop path", path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v; want %v", path, want)
		}
	}
}

func TestShortestPath_WeightIsDiscoveryPathWeight(t *testing.T) {
	g := buildDiamond(t)

	_, weight, err := bfs.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	// A-B-D carries weight 3. Hop-count semantics: this equals the true
	// weighted minimum here by coincidence of the fixture, not by contract.
	if weight != 3 {
		t.Fatalf("weight = %v; want 3 along A-B-D", weight)
	}
}

func TestShortestPath_StartEqualsTarget(t *testing.T) {
	g := buildDiamond(t)

	path, weight, err := bfs.ShortestPath(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || path[0] != "A" || weight != 0 {
		t.Fatalf("path = %v weight = %v; want [A] 0", path, weight)
	}
}

func TestShortestPath_NoPathIsNilNotError(t *testing.T) {
	g := buildDiamond(t)
	if err := g.AddVertex("island", nil); err != nil {
		t.Fatal(err)
	}

	// Twice: "no path" must be idempotent and never escalate to an error.
	for i := 0; i < 2; i++ {
		path, _, err := bfs.ShortestPath(g, "A", "island")
		if err != nil {
			t.Fatalf("run %d: err = %v", i, err)
		}
		if path != nil {
			t.Fatalf("run %d: path = %v; want nil", i, path)
		}
	}
}

func TestShortestPath_UnknownStart(t *testing.T) {
	g := buildDiamond(t)

	path, _, err := bfs.ShortestPath(g, "ghost", "A")
	if err != nil || path != nil {
		t.Fatalf("path = %v err = %v; want nil, nil", path, err)
	}
}

func TestShortestPath_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		if err := g.AddVertex(id, nil); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("B", "C", 1); err != nil {
		t.Fatal(err)
	}

	if path, _, err := bfs.ShortestPath(g, "A", "C"); err != nil || len(path) != 3 {
		t.Fatalf("forward path = %v err = %v; want [A B C]", path, err)
	}
	if path, _, err := bfs.ShortestPath(g, "C", "A"); err != nil || path != nil {
		t.Fatalf("reverse path = %v err = %v; want nil (edges are one-way)", path, err)
	}
}

// TestShortestPath_HopCountMatchesExhaustiveDistances cross-checks path
// length against depths computed by a full traversal.
func TestShortestPath_HopCountMatchesExhaustiveDistances(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, id := range ids {
		if err := g.AddVertex(id, nil); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"E", "F"}, {"C", "G"},
	} {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatal(err)
		}
	}

	full, err := bfs.Traverse(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	for _, target := range ids[1:] {
		path, _, err := bfs.ShortestPath(g, "A", target)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(path)-1, full.Depth[target]; got != want {
			t.Fatalf("hops to %s = %d; true distance %d", target, got, want)
		}
	}
}
