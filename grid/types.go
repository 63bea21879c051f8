// Package grid defines the Grid and Cell types, connectivity options,
// and the sentinel errors shared by parsing and search.
package grid

import "errors"

// Sentinel errors for grid parsing and search.
var (
	// ErrBadHeader indicates the first line is not "<rows> <cols>".
	ErrBadHeader = errors.New("grid: header must be \"<rows> <cols>\"")

	// ErrEmptyGrid indicates a declared dimension below one.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")

	// ErrRowCount indicates the input ended before all declared rows were read.
	ErrRowCount = errors.New("grid: fewer rows than declared")

	// ErrRowLength indicates a row whose length differs from the declared
	// column count.
	ErrRowLength = errors.New("grid: row length does not match declared columns")

	// ErrMissingStart indicates no 'S' cell was found.
	ErrMissingStart = errors.New("grid: no start cell 'S'")

	// ErrMissingGoal indicates no 'G' cell was found.
	ErrMissingGoal = errors.New("grid: no goal cell 'G'")

	// ErrDuplicateMarker indicates more than one 'S' or more than one 'G'.
	ErrDuplicateMarker = errors.New("grid: start and goal markers must be unique")

	// ErrNoPath indicates the goal cannot be reached from the start.
	ErrNoPath = errors.New("grid: no path between start and goal")
)

// Blocked is the obstacle marker; blocked cells are never entered.
const Blocked = '#'

// Start and Goal are the endpoint markers; exactly one of each per grid.
const (
	Start = 'S'
	Goal  = 'G'
)

// Cell addresses one grid position by row and column, both zero-based.
type Cell struct {
	Row, Col int
}

// Connectivity selects the neighborhood: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Option configures grid construction via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for grid parsing and search.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns the defaults: Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity selects the neighborhood used by Neighbors and ShortestPath.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}
