// Command mincost reads a directed weighted graph from a text file and
// prints the minimum net cost from vertex 0 to vertex n-1, tolerating
// negative edge weights. An unreachable destination and a reachable
// negative cycle are reported as distinct, labeled outcomes.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pathlab/pathlab/bellmanford"
	"github.com/pathlab/pathlab/graph"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mincost <graph-file>",
	Short: "Minimum net cost from vertex 0 to vertex n-1, negative weights allowed",
	Long: `mincost reads a text file describing a directed weighted graph
("<num_vertices> <num_edges>" header, then one "<u> <v> <w>" record per
edge; weights may be negative, e.g. segments with a net energy gain) and
runs Bellman-Ford from vertex 0 toward vertex n-1.

Three outcomes are possible and each is labeled distinctly: a finite
cost with its path, "no path" when the destination is unreachable, and
"negative cycle" when the minimum cost is unbounded below.`,
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

	g, err := graph.ReadFile(args[0], graph.WithDirected())
	if err != nil {
		return err
	}
	source, dest := 0, g.VertexCount()-1
	logger.Debug("graph parsed",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("source", source),
		zap.Int("destination", dest),
	)

	res, err := bellmanford.Run(g, source)
	if err != nil {
		return err
	}
	logger.Debug("relaxation complete",
		zap.Bool("negative_cycle", res.HasNegativeCycle()),
		zap.Duration("elapsed", time.Since(start)),
	)

	cost, err := res.Dist(dest)
	switch {
	case errors.Is(err, bellmanford.ErrNegativeCycle):
		fmt.Println("negative cycle reachable from source; minimum cost is undefined")

		return nil
	case errors.Is(err, bellmanford.ErrUnreachable):
		fmt.Printf("no path from %d to %d\n", source, dest)

		return nil
	case err != nil:
		return err
	}

	path, err := res.Path(dest)
	if err != nil {
		return err
	}
	fmt.Printf("path: %s\n", formatPath(path))
	fmt.Printf("total cost: %d\n", cost)

	return nil
}

// formatPath renders a vertex sequence as "0 -> 1 -> 2".
func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, " -> ")
}

func main() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parse and compute statistics")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mincost:", err)
		os.Exit(1)
	}
}
