// Command central reads an undirected weighted network from a text file,
// computes all-pairs shortest paths, and prints the central vertex — the
// one minimizing the maximum distance to every other vertex.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pathlab/pathlab/floydwarshall"
	"github.com/pathlab/pathlab/graph"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "central <graph-file>",
	Short: "Pick the central station of an undirected weighted network",
	Long: `central reads a text file describing an undirected weighted graph
("<num_vertices> <num_edges>" header, then one "<u> <v> <w>" record per
edge), runs Floyd-Warshall over it, and prints the vertex with the
smallest eccentricity. Ties go to the lowest vertex index.

A graph in which every vertex fails to reach some other vertex has no
valid center; that outcome is reported explicitly instead of a number.`,
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

	g, err := graph.ReadFile(args[0])
	if err != nil {
		return err
	}
	logger.Debug("graph parsed",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	res, err := floydwarshall.AllPairs(g)
	if err != nil {
		return err
	}
	logger.Debug("all-pairs matrix complete", zap.Duration("elapsed", time.Since(start)))

	center, ecc, err := res.Center()
	if errors.Is(err, floydwarshall.ErrNoCenter) {
		// A reportable outcome, not a failure: every vertex is
		// disconnected from at least one other.
		fmt.Println("no valid center: every vertex is disconnected from some other vertex")

		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("central vertex: %d (eccentricity %g)\n", center, ecc)

	return nil
}

func main() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parse and compute statistics")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "central:", err)
		os.Exit(1)
	}
}
