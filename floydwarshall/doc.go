// Package floydwarshall computes all-pairs shortest paths over a
// graph.Graph and derives from them the eccentricity of every vertex and
// the central vertex — the "central station" of a network.
//
// Algorithm:
//
//	Dense dynamic programming over an increasing set of allowed
//	intermediate vertices. After initializing dist[i][j] to the direct
//	edge weight (0 on the diagonal, +Inf when no edge exists), relax
//
//	    dist[i][j] = min(dist[i][j], dist[i][k] + dist[k][j])
//
//	with fixed loop order k → i → j, k ascending. The loop order and the
//	strict-improvement rule make the result deterministic.
//
// Complexity:
//
//   - Time:  O(V³) — accepted; discovering the full all-pairs structure
//     is the point, not asymptotic efficiency.
//   - Space: O(V²) for the distance matrix.
//
// Unreachable pairs keep the +Inf sentinel, never a finite placeholder.
// A vertex that cannot reach some other vertex has eccentricity +Inf and
// is excluded from center selection; when every vertex is excluded,
// Center returns ErrNoCenter rather than a numeric answer. Ties between
// equally eccentric vertices go to the lowest vertex index.
//
// Errors (sentinel):
//
//	ErrNilGraph — a nil *graph.Graph was supplied.
//	ErrNoCenter — every vertex has infinite eccentricity.
package floydwarshall
