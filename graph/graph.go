package graph

import "fmt"

// New constructs an empty Graph over vertices 0..n-1.
// Returns ErrBadVertexCount if n < 1.
// Complexity: O(n) for the adjacency skeleton.
func New(n int, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, n)
	}
	g := &Graph{
		n:   n,
		adj: make([][]Edge, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// AddEdge appends the edge (u, v, w). Returns ErrVertexRange if either
// endpoint lies outside 0..n-1. For an undirected graph the edge is stored
// once but becomes traversable in both directions.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: u=%d, vertices 0..%d", ErrVertexRange, u, g.n-1)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: v=%d, vertices 0..%d", ErrVertexRange, v, g.n-1)
	}
	e := Edge{From: u, To: v, Weight: w}
	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], e)
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w})
	}

	return nil
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of stored edges. An undirected edge counts
// once, matching the <num_edges> header of the text format.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Edges returns a copy of the stored edge list, in insertion order.
// Undirected edges appear once, in their input orientation.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a copy of every edge leaving u: stored out-edges plus,
// for undirected graphs, the reverse of every edge entering u.
// Returns ErrVertexRange for an out-of-range u.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("%w: u=%d, vertices 0..%d", ErrVertexRange, u, g.n-1)
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}
