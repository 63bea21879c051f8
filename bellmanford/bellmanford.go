package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/pathlab/pathlab/graph"
)

// Sentinel errors for single-source computation and result queries.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Run.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceRange indicates the source index lies outside 0..n-1.
	ErrSourceRange = errors.New("bellmanford: source vertex out of range")

	// ErrVertexRange indicates a queried vertex lies outside 0..n-1.
	ErrVertexRange = errors.New("bellmanford: vertex index out of range")

	// ErrUnreachable indicates the queried vertex has no path from the source.
	ErrUnreachable = errors.New("bellmanford: vertex unreachable from source")

	// ErrNegativeCycle indicates the queried vertex lies downstream of a
	// negative-weight cycle reachable from the source, so its minimum
	// cost is unbounded below.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// Unreachable is the distance sentinel for vertices with no path from the
// source. Relaxation skips edges whose tail still carries it, so it never
// participates in arithmetic.
const Unreachable = int64(math.MaxInt64)

// Result holds the finished single-source distances and predecessors.
type Result struct {
	source    int
	dist      []int64
	prev      []int  // prev[v] = predecessor of v on a shortest path, -1 if none
	undefined []bool // true when v is downstream of a reachable negative cycle
}

// Run executes Bellman-Ford from source over g.
//
// Passes run over g.Edges(); for an undirected graph each stored edge is
// relaxed in both orientations. After the |V|-1 relaxation passes (or an
// early quiescent pass), a detection pass finds every edge that can still
// be relaxed; the heads of those edges, and everything reachable from
// them, are marked undefined.
//
// Complexity: Time O(V·E), Space O(V).
func Run(g *graph.Graph, source int) (*Result, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d, vertices 0..%d", ErrSourceRange, source, n-1)
	}

	// 2) Initialize: dist[source]=0, everything else Unreachable, no predecessors.
	r := &Result{
		source:    source,
		dist:      make([]int64, n),
		prev:      make([]int, n),
		undefined: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	r.dist[source] = 0

	relaxable := edgeOrientations(g)

	// 3) |V|-1 relaxation passes with early exit on a quiescent pass.
	var updated bool
	for pass := 0; pass < n-1; pass++ {
		updated = false
		for _, e := range relaxable {
			if r.dist[e.From] == Unreachable {
				continue
			}
			if cand := r.dist[e.From] + e.Weight; cand < r.dist[e.To] {
				r.dist[e.To] = cand
				r.prev[e.To] = e.From
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	// 4) Detection pass: still-relaxable edges expose reachable negative
	//    cycles. Collect their heads, then flood downstream.
	var tainted []int
	for _, e := range relaxable {
		if r.dist[e.From] == Unreachable {
			continue
		}
		if r.dist[e.From]+e.Weight < r.dist[e.To] && !r.undefined[e.To] {
			r.undefined[e.To] = true
			tainted = append(tainted, e.To)
		}
	}
	for len(tainted) > 0 {
		u := tainted[len(tainted)-1]
		tainted = tainted[:len(tainted)-1]
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("bellmanford: neighbors of %d: %w", u, err)
		}
		for _, e := range nbrs {
			if !r.undefined[e.To] {
				r.undefined[e.To] = true
				tainted = append(tainted, e.To)
			}
		}
	}

	return r, nil
}

// edgeOrientations expands g.Edges() into the list of directed relaxation
// candidates: as-is for directed graphs, both orientations otherwise.
func edgeOrientations(g *graph.Graph) []graph.Edge {
	edges := g.Edges()
	if g.Directed() {
		return edges
	}
	both := make([]graph.Edge, 0, 2*len(edges))
	for _, e := range edges {
		both = append(both, e)
		if e.From != e.To {
			both = append(both, graph.Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return both
}

// Source returns the source vertex this result was computed from.
func (r *Result) Source() int { return r.source }

// HasNegativeCycle reports whether any reachable negative cycle was detected.
func (r *Result) HasNegativeCycle() bool {
	for _, bad := range r.undefined {
		if bad {
			return true
		}
	}

	return false
}

// Dist returns the minimum cost from the source to v.
// Returns ErrNegativeCycle when v sits downstream of a reachable negative
// cycle, and ErrUnreachable when no path exists — never a finite stand-in.
func (r *Result) Dist(v int) (int64, error) {
	if v < 0 || v >= len(r.dist) {
		return 0, fmt.Errorf("%w: %d, vertices 0..%d", ErrVertexRange, v, len(r.dist)-1)
	}
	if r.undefined[v] {
		return 0, fmt.Errorf("%w: cost to %d is unbounded", ErrNegativeCycle, v)
	}
	if r.dist[v] == Unreachable {
		return 0, fmt.Errorf("%w: no path %d→%d", ErrUnreachable, r.source, v)
	}

	return r.dist[v], nil
}

// Path reconstructs a minimum-cost path source→dest by walking the
// predecessor array. The same sentinel rules as Dist apply.
// Complexity: O(path length).
func (r *Result) Path(dest int) ([]int, error) {
	if _, err := r.Dist(dest); err != nil {
		return nil, err
	}
	// Walk back from dest; the predecessor chain is cycle-free because
	// every undefined vertex was rejected above.
	var rev []int
	for v := dest; v != -1; v = r.prev[v] {
		rev = append(rev, v)
		if v == r.source {
			break
		}
	}
	// Reverse in place to get source→dest order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
