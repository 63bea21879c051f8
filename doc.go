// Package pathlab collects three self-contained shortest-path exercises,
// each a single parse → compute → report pipeline over a small text file.
//
// What lives here:
//
//	graph/         — integer-indexed weighted graphs + the <n> <m> text format
//	floydwarshall/ — all-pairs shortest paths, eccentricities, central vertex
//	bellmanford/   — single-source shortest paths with negative weights and
//	                 negative-cycle detection
//	grid/          — character grids with per-cell entry costs and a
//	                 min-heap Dijkstra search
//	cmd/central    — pick the central station of an undirected network
//	cmd/mincost    — minimal net cost from vertex 0 to vertex n-1
//	cmd/gridpath   — cheapest route across a warehouse grid, rendered
//
// Each binary reads exactly one input file named on the command line and
// prints one human-readable answer. There is no shared runtime and no
// state between runs; a malformed file fails the run immediately.
//
// Conventions shared by the algorithm packages:
//
//   - Distances use +Inf (all-pairs) or math.MaxInt64 (single-source) as
//     the "unreachable" sentinel, never a finite placeholder.
//   - "No path" and "negative cycle" are distinct, reportable outcomes,
//     surfaced as distinct sentinel errors.
//   - Fixed loop orders and documented tie-break rules keep every result
//     deterministic for a given input.
package pathlab
