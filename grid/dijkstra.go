package grid

import (
	"container/heap"
	"math"
)

// Route is the outcome of a successful search.
type Route struct {
	// Cells is the optimal path start→goal, inclusive of both endpoints.
	Cells []Cell

	// Cost is the summed entry cost of every cell after the start.
	Cost int64

	// Expanded counts cells popped from the frontier, stale entries included.
	Expanded int
}

// Steps returns the number of moves along the route: len(Cells)-1.
func (rt *Route) Steps() int { return len(rt.Cells) - 1 }

// unreached is the tentative-distance sentinel before a cell is relaxed.
const unreached = int64(math.MaxInt64)

// ShortestPath runs Dijkstra from the 'S' cell to the 'G' cell.
//
// The frontier is a min-heap keyed by tentative cost; duplicates are
// pushed on every improvement and stale entries skipped on pop (lazy
// decrease-key, as non-negative costs allow). The search stops as soon
// as the goal is popped with its final cost. Returns ErrNoPath when the
// frontier drains without finalizing the goal.
//
// Complexity: Time O(W·H·log(W·H)), Space O(W·H).
func (g *Grid) ShortestPath() (*Route, error) {
	// 1) Start equal to goal short-circuits to a one-cell route.
	if g.start == g.goal {
		return &Route{Cells: []Cell{g.start}, Cost: 0}, nil
	}

	// 2) Flat row-major state: tentative cost, predecessor, finalized flag.
	size := g.rows * g.cols
	dist := make([]int64, size)
	parent := make([]int, size)
	done := make([]bool, size)
	for i := 0; i < size; i++ {
		dist[i] = unreached
		parent[i] = -1
	}

	startIdx := g.index(g.start)
	goalIdx := g.index(g.goal)
	dist[startIdx] = 0

	// 3) Frontier seeded with the start at cost 0.
	pq := make(cellPQ, 0, g.rows+g.cols)
	heap.Init(&pq)
	heap.Push(&pq, &cellItem{idx: startIdx, dist: 0})

	expanded := 0
	scratch := make([]Cell, 0, len(g.offsets))
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*cellItem)
		expanded++

		// Stale entry: a cheaper route to this cell was finalized earlier.
		if done[item.idx] {
			continue
		}
		done[item.idx] = true

		// Goal finalized: its cost can never be revised, stop here.
		if item.idx == goalIdx {
			return &Route{
				Cells:    g.walkBack(parent, goalIdx),
				Cost:     item.dist,
				Expanded: expanded,
			}, nil
		}

		// 4) Relax every passable neighbor; pay the entry cost of the
		//    destination cell.
		scratch = g.Neighbors(scratch[:0], g.cell(item.idx))
		for _, n := range scratch {
			nIdx := g.index(n)
			if done[nIdx] {
				continue
			}
			cand := item.dist + g.Cost(n)
			if cand >= dist[nIdx] {
				continue
			}
			dist[nIdx] = cand
			parent[nIdx] = item.idx
			heap.Push(&pq, &cellItem{idx: nIdx, dist: cand})
		}
	}

	return nil, ErrNoPath
}

// walkBack rebuilds the start→goal cell sequence from the parent array.
func (g *Grid) walkBack(parent []int, goalIdx int) []Cell {
	var rev []Cell
	for idx := goalIdx; idx != -1; idx = parent[idx] {
		rev = append(rev, g.cell(idx))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Overlay renders the grid with '*' on every route cell other than the
// start and goal markers, one string per row.
func (g *Grid) Overlay(rt *Route) []string {
	marked := make(map[Cell]bool, len(rt.Cells))
	for _, c := range rt.Cells {
		marked[c] = true
	}
	out := make([]string, g.rows)
	for y := 0; y < g.rows; y++ {
		row := make([]rune, g.cols)
		for x := 0; x < g.cols; x++ {
			c := Cell{y, x}
			ch := g.cells[y][x]
			if marked[c] && ch != Start && ch != Goal {
				ch = '*'
			}
			row[x] = ch
		}
		out[y] = string(row)
	}

	return out
}

// cellItem is one frontier entry: a cell index and its tentative cost.
type cellItem struct {
	idx  int
	dist int64
}

// cellPQ is a min-heap of *cellItem ordered by dist ascending. Stale
// duplicates are tolerated and skipped on pop.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
