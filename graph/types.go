// Package graph defines the Graph and Edge types, construction options,
// and the sentinel errors shared by construction and parsing.
package graph

import "errors"

// Sentinel errors for graph construction and parsing.
var (
	// ErrBadVertexCount indicates a non-positive declared vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be positive")

	// ErrBadHeader indicates the first line is not "<num_vertices> <num_edges>".
	ErrBadHeader = errors.New("graph: header must be \"<num_vertices> <num_edges>\"")

	// ErrBadEdgeRecord indicates an edge line is not three integer tokens.
	ErrBadEdgeRecord = errors.New("graph: edge record must be \"<u> <v> <w>\"")

	// ErrVertexRange indicates an edge endpoint outside 0..n-1.
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrEdgeCount indicates the parsed edge count differs from the declared count.
	ErrEdgeCount = errors.New("graph: edge count does not match header")
)

// Edge is a weighted connection From→To. For undirected graphs the stored
// direction is the one that appeared in the input; Neighbors reports both.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge cost. Negative weights are permitted; whether a
	// consumer tolerates them is the consumer's contract, not this package's.
	Weight int64
}

// Option configures a Graph before any edges are added.
type Option func(*Graph)

// WithDirected makes every edge one-way, From→To. The default is
// undirected: each stored edge is traversable in both directions.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is an immutable-after-build weighted graph over vertices 0..n-1.
// Build one with New+AddEdge or with Parse/ReadFile, then only read it.
type Graph struct {
	n        int
	directed bool
	edges    []Edge
	adj      [][]Edge // adj[u] holds every edge leaving u (both directions when undirected)
}
