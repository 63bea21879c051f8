package graph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pathlab/pathlab/graph"
)

func TestParse_ValidUndirected(t *testing.T) {
	in := "4 3\n0 1 2\n1 2 5\n2 3 1\n"
	g, err := graph.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.False(t, g.Directed())

	// Undirected: vertex 2 sees both 1 and 3.
	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
}

func TestParse_ValidDirectedNegativeWeights(t *testing.T) {
	in := "3 3\n0 1 4\n1 2 -3\n0 2 10\n"
	g, err := graph.Parse(strings.NewReader(in), graph.WithDirected())
	require.NoError(t, err)
	require.True(t, g.Directed())

	edges := g.Edges()
	require.Equal(t, int64(-3), edges[1].Weight)

	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Empty(t, nbrs, "directed edges must not be mirrored")
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	in := "# tiny network\n\n2 1\n\n# the only edge\n0 1 3\n"
	g, err := graph.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty input", "", graph.ErrBadHeader},
		{"one header field", "4\n", graph.ErrBadHeader},
		{"non-numeric vertex count", "x 2\n", graph.ErrBadHeader},
		{"non-numeric edge count", "4 y\n", graph.ErrBadHeader},
		{"negative edge count", "4 -1\n", graph.ErrBadHeader},
		{"zero vertices", "0 0\n", graph.ErrBadVertexCount},
		{"two-field record", "2 1\n0 1\n", graph.ErrBadEdgeRecord},
		{"four-field record", "2 1\n0 1 2 3\n", graph.ErrBadEdgeRecord},
		{"non-numeric weight", "2 1\n0 1 w\n", graph.ErrBadEdgeRecord},
		{"endpoint out of range", "2 1\n0 2 1\n", graph.ErrVertexRange},
		{"too few records", "3 2\n0 1 1\n", graph.ErrEdgeCount},
		{"too many records", "3 1\n0 1 1\n1 2 1\n", graph.ErrEdgeCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.Parse(strings.NewReader(tc.in))
			if !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%q): got %v, want %v", tc.in, err, tc.want)
			}
		})
	}
}

func TestParse_ErrorNamesOffendingLine(t *testing.T) {
	_, err := graph.Parse(strings.NewReader("2 1\n0 1 bad\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := graph.ReadFile("testdata/definitely-absent.txt")
	require.Error(t, err)
}
