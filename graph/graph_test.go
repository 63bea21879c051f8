// Package graph_test exercises construction and accessor behavior of the
// integer-indexed Graph: vertex-range checks, undirected mirroring, and
// copy semantics of Edges/Neighbors.
package graph_test

import (
	"errors"
	"testing"

	"github.com/pathlab/pathlab/graph"
)

func TestNew_RejectsNonPositiveVertexCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := graph.New(n); !errors.Is(err, graph.ErrBadVertexCount) {
			t.Fatalf("New(%d): expected ErrBadVertexCount, got %v", n, err)
		}
	}
}

func TestAddEdge_RangeChecked(t *testing.T) {
	g, err := graph.New(3)
	if err != nil {
		t.Fatal(err)
	}
	if err = g.AddEdge(0, 3, 1); !errors.Is(err, graph.ErrVertexRange) {
		t.Fatalf("expected ErrVertexRange for v=3, got %v", err)
	}
	if err = g.AddEdge(-1, 2, 1); !errors.Is(err, graph.ErrVertexRange) {
		t.Fatalf("expected ErrVertexRange for u=-1, got %v", err)
	}
	if err = g.AddEdge(0, 2, 1); err != nil {
		t.Fatalf("valid edge rejected: %v", err)
	}
}

func TestNeighbors_UndirectedMirrorsEdges(t *testing.T) {
	// 0—1 stored once; both endpoints must see it.
	g, _ := graph.New(2)
	if err := g.AddEdge(0, 1, 7); err != nil {
		t.Fatal(err)
	}

	from0, err := g.Neighbors(0)
	if err != nil {
		t.Fatal(err)
	}
	from1, err := g.Neighbors(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(from0) != 1 || from0[0].To != 1 || from0[0].Weight != 7 {
		t.Errorf("Neighbors(0) = %v; want single edge to 1 with weight 7", from0)
	}
	if len(from1) != 1 || from1[0].To != 0 || from1[0].Weight != 7 {
		t.Errorf("Neighbors(1) = %v; want single edge to 0 with weight 7", from1)
	}
	// The stored edge list still holds the edge once.
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}
}

func TestNeighbors_DirectedIsOneWay(t *testing.T) {
	g, _ := graph.New(2, graph.WithDirected())
	if err := g.AddEdge(0, 1, 7); err != nil {
		t.Fatal(err)
	}
	from1, err := g.Neighbors(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(from1) != 0 {
		t.Errorf("Neighbors(1) = %v; want none for a directed 0→1 edge", from1)
	}
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g, _ := graph.New(2)
	if _, err := g.Neighbors(2); !errors.Is(err, graph.ErrVertexRange) {
		t.Fatalf("expected ErrVertexRange, got %v", err)
	}
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g, _ := graph.New(2)
	_ = g.AddEdge(0, 1, 1)
	edges := g.Edges()
	edges[0].Weight = 99
	if g.Edges()[0].Weight != 1 {
		t.Error("mutating the Edges() result must not affect the graph")
	}
}

func TestAddEdge_SelfLoopUndirectedNotDoubled(t *testing.T) {
	g, _ := graph.New(1)
	if err := g.AddEdge(0, 0, 5); err != nil {
		t.Fatal(err)
	}
	from0, _ := g.Neighbors(0)
	if len(from0) != 1 {
		t.Errorf("self-loop listed %d times in Neighbors(0); want 1", len(from0))
	}
}
