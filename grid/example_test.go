package grid_test

import (
	"fmt"
	"strings"

	"github.com/pathlab/pathlab/grid"
)

// ExampleGrid_ShortestPath routes around a wall and renders the result.
func ExampleGrid_ShortestPath() {
	input := "3 4\n" +
		"S...\n" +
		".##.\n" +
		"~..G\n"

	g, _ := grid.Parse(strings.NewReader(input))
	rt, _ := g.ShortestPath()
	fmt.Printf("total cost: %d\n", rt.Cost)
	for _, line := range g.Overlay(rt) {
		fmt.Println(line)
	}
	// Output:
	// total cost: 5
	// S***
	// .##*
	// ~..G
}
