// Package graph provides the integer-indexed weighted graph shared by the
// floydwarshall and bellmanford exercises, together with a parser for
// their common text format.
//
// Model:
//
//   - Vertices are the integers 0..n-1, fixed at construction time.
//   - Edges are (From, To, Weight) triples with int64 weights; weights may
//     be negative — nothing in this package assumes non-negativity.
//   - A graph is either directed or undirected as a whole. An undirected
//     edge is stored once and reported in both directions by Neighbors.
//   - Once parsed or built, a Graph is read-only; accessors return copies.
//
// Text format (whitespace-delimited tokens, newline-separated records):
//
//	<num_vertices> <num_edges>
//	<u> <v> <w>          (exactly num_edges records)
//
// Blank lines and lines starting with '#' are skipped. Anything else that
// deviates — wrong token counts, non-numeric fields, endpoints outside
// 0..n-1, a record count that disagrees with the header — fails the parse
// with a sentinel-wrapped error; no partial graph is ever returned.
//
// Errors (sentinel):
//
//	ErrBadVertexCount — declared vertex count is not a positive integer.
//	ErrBadHeader      — first line is not "<num_vertices> <num_edges>".
//	ErrBadEdgeRecord  — an edge line is not three integer tokens.
//	ErrVertexRange    — an endpoint lies outside 0..n-1.
//	ErrEdgeCount      — parsed edge count differs from the declared count.
package graph
