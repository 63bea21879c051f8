package floydwarshall

import (
	"errors"
	"fmt"
	"math"

	"github.com/pathlab/pathlab/graph"
)

// Sentinel errors for all-pairs computation and center selection.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to AllPairs.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNoCenter indicates every vertex has infinite eccentricity, so no
	// valid center exists.
	ErrNoCenter = errors.New("floydwarshall: no vertex reaches all others")

	// ErrVertexRange indicates an out-of-range vertex index was queried.
	ErrVertexRange = errors.New("floydwarshall: vertex index out of range")
)

// Inf is the "no path" sentinel used throughout the distance matrix.
var Inf = math.Inf(1)

// Result holds the finished all-pairs distance matrix.
type Result struct {
	n    int
	dist [][]float64 // dist[i][j]: shortest distance i→j, Inf if unreachable
}

// AllPairs runs Floyd-Warshall over g and returns the completed matrix.
//
// Initialization: dist[i][i] = 0; dist[i][j] = weight of the cheapest
// direct edge i→j (parallel edges collapse to the minimum); +Inf
// otherwise. Undirected graphs contribute both orientations via
// graph.Neighbors, so their matrices come out symmetric.
//
// Complexity: Time O(V³), Space O(V²).
func AllPairs(g *graph.Graph) (*Result, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()

	// 2) Allocate and initialize the matrix: diagonal 0, off-diagonal +Inf.
	dist := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				dist[i][j] = Inf
			}
		}
	}

	// 3) Seed direct edges; keep the minimum over parallel edges.
	var w float64
	for i = 0; i < n; i++ {
		nbrs, err := g.Neighbors(i)
		if err != nil {
			return nil, fmt.Errorf("floydwarshall: neighbors of %d: %w", i, err)
		}
		for _, e := range nbrs {
			w = float64(e.Weight)
			if w < dist[i][e.To] {
				dist[i][e.To] = w
			}
		}
	}

	// 4) Relax with fixed k → i → j order for deterministic accumulation.
	var k int
	var dik, cand float64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik = dist[i][k]
			if math.IsInf(dik, 1) { // i cannot reach k: no path via k helps
				continue
			}
			for j = 0; j < n; j++ {
				if math.IsInf(dist[k][j], 1) {
					continue
				}
				cand = dik + dist[k][j]
				if cand < dist[i][j] { // strict improvement only
					dist[i][j] = cand
				}
			}
		}
	}

	return &Result{n: n, dist: dist}, nil
}

// VertexCount returns the matrix order.
func (r *Result) VertexCount() int { return r.n }

// Dist returns the shortest distance i→j, or Inf when unreachable.
// Returns ErrVertexRange for out-of-range indices.
func (r *Result) Dist(i, j int) (float64, error) {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return 0, fmt.Errorf("%w: (%d,%d), vertices 0..%d", ErrVertexRange, i, j, r.n-1)
	}

	return r.dist[i][j], nil
}

// Eccentricity returns the maximum distance from i to any other vertex;
// Inf when some vertex is unreachable from i.
// Complexity: O(V).
func (r *Result) Eccentricity(i int) (float64, error) {
	if i < 0 || i >= r.n {
		return 0, fmt.Errorf("%w: %d, vertices 0..%d", ErrVertexRange, i, r.n-1)
	}
	ecc := 0.0
	for j := 0; j < r.n; j++ {
		if r.dist[i][j] > ecc {
			ecc = r.dist[i][j]
		}
	}

	return ecc, nil
}

// Center selects the vertex minimizing eccentricity among vertices with
// finite eccentricity, breaking ties toward the lowest index. Returns
// ErrNoCenter when every vertex has infinite eccentricity (the graph is
// too disconnected to have a center).
// Complexity: O(V²).
func (r *Result) Center() (center int, eccentricity float64, err error) {
	center = -1
	eccentricity = Inf
	var ecc float64
	for i := 0; i < r.n; i++ {
		ecc, _ = r.Eccentricity(i) // i is in range by construction
		if math.IsInf(ecc, 1) {
			continue // cannot be the center
		}
		if ecc < eccentricity { // strict: ties keep the lowest index
			center, eccentricity = i, ecc
		}
	}
	if center < 0 {
		return 0, 0, ErrNoCenter
	}

	return center, eccentricity, nil
}
