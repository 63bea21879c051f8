// Package grid models a rectangular character grid with per-cell entry
// costs and finds the cheapest route between its start and goal markers.
//
// Text format (first line "<rows> <cols>", then exactly rows lines of
// exactly cols characters):
//
//	'#'  blocked cell (never entered)
//	'.'  open floor, entry cost 1
//	'='  walkway, entry cost 1
//	'~'  rough ground, entry cost 3
//	'S'  start (exactly one), entry cost 1
//	'G'  goal  (exactly one), entry cost 1
//
// Any other passable character costs 1. The cost of a move is the cost of
// entering the destination cell; the start cell is never paid for.
//
// Search:
//
//	Priority-ordered expansion from the start cell. A min-heap keyed by
//	tentative total cost always yields the cheapest unfinalized cell;
//	its passable neighbors (4-directional by default, 8 with Conn8) are
//	relaxed, and stale heap entries are skipped on pop (lazy
//	decrease-key). Non-negative costs guarantee a finalized cell is
//	never revised, so the search stops the moment the goal is finalized.
//	Ties between equal-cost routes resolve by expansion order, which is
//	deterministic because neighbor offsets are scanned in a fixed order.
//
// Complexity:
//
//   - Time:  O(W·H · log(W·H)) with the binary heap.
//   - Space: O(W·H) for distances, predecessors, and the frontier.
//
// An unreachable goal is reported as ErrNoPath, never as a number; a
// start equal to the goal yields cost 0 and a one-cell route.
package grid
