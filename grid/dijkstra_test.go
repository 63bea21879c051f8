// Package grid_test search coverage: Manhattan-distance baseline,
// weighted detours, enclosed goals, and the path/cost consistency property.
package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pathlab/pathlab/grid"
)

// checkRouteConsistent verifies the reported route is a chain of adjacent
// passable cells whose summed entry costs equal the reported total.
func checkRouteConsistent(t *testing.T, g *grid.Grid, rt *grid.Route) {
	t.Helper()
	if len(rt.Cells) == 0 {
		t.Fatal("route has no cells")
	}
	if rt.Cells[0] != g.StartCell() {
		t.Errorf("route starts at %v; want %v", rt.Cells[0], g.StartCell())
	}
	if rt.Cells[len(rt.Cells)-1] != g.GoalCell() {
		t.Errorf("route ends at %v; want %v", rt.Cells[len(rt.Cells)-1], g.GoalCell())
	}
	var sum int64
	for i, c := range rt.Cells {
		if !g.Passable(c) {
			t.Errorf("route visits impassable cell %v", c)
		}
		if i == 0 {
			continue // entering the start is free
		}
		prev := rt.Cells[i-1]
		dr, dc := c.Row-prev.Row, c.Col-prev.Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		if dr+dc != 1 {
			t.Errorf("cells %v and %v are not 4-adjacent", prev, c)
		}
		sum += g.Cost(c)
	}
	if sum != rt.Cost {
		t.Errorf("summed entry costs = %d; reported Cost = %d", sum, rt.Cost)
	}
}

func TestShortestPath_OpenGridManhattanDistance(t *testing.T) {
	// No obstacles, unit costs, corner to corner: cost must equal the
	// Manhattan distance (3-1)+(4-1) = 5.
	g := parse(t, "3 4\nS...\n....\n...G\n")
	rt, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	if rt.Cost != 5 {
		t.Errorf("Cost = %d; want 5", rt.Cost)
	}
	if rt.Steps() != 5 {
		t.Errorf("Steps = %d; want 5", rt.Steps())
	}
	checkRouteConsistent(t, g, rt)
}

func TestShortestPath_RoughGroundCheaperThanDetour(t *testing.T) {
	// Crossing the '~' band once beats walking all the way around it.
	g := parse(t, "3 5\nS....\n~~~~.\nG....\n")
	rt, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	// Straight down pays the single '~' at (1,0): 3+1 = 4. The all-floor
	// detour around the band costs 10. The search must take the 4.
	if rt.Cost != 4 {
		t.Errorf("Cost = %d; want 4 (through the single '~')", rt.Cost)
	}
	checkRouteConsistent(t, g, rt)
}

func TestShortestPath_EnclosedGoalIsNoPath(t *testing.T) {
	g := parse(t, "3 5\nS.###\n..#G#\n..###\n")
	_, err := g.ShortestPath()
	if !errors.Is(err, grid.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

func TestShortestPath_StartEqualsGoal(t *testing.T) {
	// The text format forces distinct S/G markers, so the coincident case
	// goes through New directly: zero cost, trivial one-cell route.
	g, err := grid.New([]string{"..", ".."}, grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 1, Col: 1})
	if err != nil {
		t.Fatal(err)
	}
	rt, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	if rt.Cost != 0 {
		t.Errorf("Cost = %d; want 0", rt.Cost)
	}
	if len(rt.Cells) != 1 || rt.Cells[0] != (grid.Cell{Row: 1, Col: 1}) {
		t.Errorf("Cells = %v; want the single start cell", rt.Cells)
	}
}

func TestShortestPath_AdjacentMarkers(t *testing.T) {
	g := parse(t, "1 2\nSG\n")
	rt, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	if rt.Cost != 1 || rt.Steps() != 1 {
		t.Errorf("Cost=%d Steps=%d; want 1 and 1", rt.Cost, rt.Steps())
	}
}

func TestShortestPath_ExpandedCounted(t *testing.T) {
	g := parse(t, "2 2\nS.\n.G\n")
	rt, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	// At minimum the start and the goal are popped.
	if rt.Expanded < 2 {
		t.Errorf("Expanded = %d; want at least 2", rt.Expanded)
	}
}

func TestShortestPath_WallMaze(t *testing.T) {
	g := parse(t, strings.Join([]string{
		"5 5",
		"S.#..",
		"..#.#",
		"..#..",
		"..#..",
		"....G",
	}, "\n") + "\n")
	rt, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	checkRouteConsistent(t, g, rt)
}

func TestOverlay_MarksInteriorCellsOnly(t *testing.T) {
	g := parse(t, "1 4\nS..G\n")
	rt, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	out := g.Overlay(rt)
	if len(out) != 1 || out[0] != "S**G" {
		t.Errorf("Overlay = %v; want [S**G]", out)
	}
}

func TestShortestPath_DeterministicTieBreak(t *testing.T) {
	// Two equal-cost routes exist; repeated runs must pick the same one.
	g := parse(t, "2 2\nS.\n.G\n")
	first, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.ShortestPath()
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Cells) != len(second.Cells) {
		t.Fatal("route length changed between runs")
	}
	for i := range first.Cells {
		if first.Cells[i] != second.Cells[i] {
			t.Fatalf("route differs at %d: %v vs %v", i, first.Cells[i], second.Cells[i])
		}
	}
}
