// Command gridpath reads a warehouse-style character grid from a text
// file, runs Dijkstra from the 'S' cell to the 'G' cell, and prints the
// cheapest route's cost, step count, expanded-cell count, and the grid
// with the route overlaid as '*'.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pathlab/pathlab/grid"
)

var (
	verbose  bool
	diagonal bool
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gridpath <grid-file>",
	Short: "Cheapest route across a character grid, rendered",
	Long: `gridpath reads a text file describing a rectangular grid
("<rows> <cols>" header, then one line per row): '#' is blocked, '.'
and '=' cost 1 to enter, '~' costs 3, and 'S'/'G' mark the endpoints.
Dijkstra expands cells in order of tentative cost, so the first time
the goal is finalized its cost is optimal.

An enclosed goal is reported as "no path", never as a number.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	start := time.Now()

	conn := grid.Conn4
	if diagonal {
		conn = grid.Conn8
	}
	g, err := grid.ReadFile(args[0], grid.WithConnectivity(conn))
	if err != nil {
		return err
	}
	logger.Debug("grid parsed",
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
	)

	rt, err := g.ShortestPath()
	if errors.Is(err, grid.ErrNoPath) {
		fmt.Println("no path between S and G")

		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("search complete",
		zap.Int("expanded", rt.Expanded),
		zap.Duration("elapsed", time.Since(start)),
	)

	fmt.Printf("total cost: %d\n", rt.Cost)
	fmt.Printf("steps: %d\n", rt.Steps())
	fmt.Printf("expanded cells: %d\n", rt.Expanded)
	fmt.Println()
	for _, line := range g.Overlay(rt) {
		fmt.Println(line)
	}

	return nil
}

func main() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parse and search statistics")
	rootCmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow 8-directional movement")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}
