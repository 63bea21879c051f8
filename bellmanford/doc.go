// Package bellmanford computes single-source shortest paths on a
// graph.Graph whose edge weights may be negative — for example, segments
// whose weight models a net energy gain — and detects negative cycles
// reachable from the source.
//
// Algorithm:
//
//	Relax every edge, |V|-1 passes: for each edge (u, v, w) with a finite
//	dist[u], set dist[v] = min(dist[v], dist[u]+w) and record u as the
//	predecessor of v. A pass that changes nothing ends the loop early.
//	One extra pass follows: any edge that can still be relaxed proves a
//	negative-weight cycle reachable from the source. Vertices downstream
//	of such a cycle have no well-defined minimum cost, and the Result
//	answers queries about them with ErrNegativeCycle — never a number.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; the early exit finishes as soon as a
//     pass is quiescent.
//   - Space: O(V) for distance, predecessor, and undefined marks.
//
// The two "no finite answer" outcomes are deliberately distinct:
// ErrUnreachable means no connectivity at all, while ErrNegativeCycle
// means cost unbounded below. Callers must be able to tell them apart.
//
// Errors (sentinel):
//
//	ErrNilGraph      — a nil *graph.Graph was supplied.
//	ErrSourceRange   — the source index lies outside 0..n-1.
//	ErrVertexRange   — a queried vertex lies outside 0..n-1.
//	ErrUnreachable   — the queried vertex has no path from the source.
//	ErrNegativeCycle — the queried vertex sits downstream of a reachable
//	                   negative cycle.
package bellmanford
