package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Grid is an immutable rectangular field of cells with one start and one
// goal marker. Build one with Parse or ReadFile, then only read it.
type Grid struct {
	rows, cols  int
	cells       [][]rune
	start, goal Cell
	offsets     [][2]int // neighbor offsets in fixed scan order
}

// Neighbor offset tables. Order is fixed (N, S, W, E, then diagonals) so
// that expansion order, and with it tie-breaking, is deterministic.
var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// New constructs a Grid directly from row strings and explicit endpoint
// cells. Rows must be non-empty and rectangular; start and goal must lie
// in bounds on passable cells. Start and goal may coincide, in which case
// ShortestPath reports a zero-cost one-cell route. The rows are copied,
// so later mutation of the input does not affect the Grid.
// Complexity: O(rows·cols).
func New(rows []string, start, goal Cell, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %d rows", ErrEmptyGrid, len(rows))
	}
	g := &Grid{
		rows:  len(rows),
		cols:  len([]rune(rows[0])),
		cells: make([][]rune, len(rows)),
		start: start,
		goal:  goal,
	}
	g.setOffsets(cfg.Conn)
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowLength, y, len(cells), g.cols)
		}
		g.cells[y] = cells
	}
	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: start %v must be an in-bounds passable cell", ErrMissingStart, start)
	}
	if !g.Passable(goal) {
		return nil, fmt.Errorf("%w: goal %v must be an in-bounds passable cell", ErrMissingGoal, goal)
	}

	return g, nil
}

// setOffsets installs the neighbor table for the chosen connectivity.
func (g *Grid) setOffsets(c Connectivity) {
	if c == Conn8 {
		g.offsets = offsets8
	} else {
		g.offsets = offsets4
	}
}

// Parse reads the "<rows> <cols>" grid format from r.
//
// Strictness: the header must be two positive integers; exactly rows
// lines must follow, each exactly cols characters long; exactly one 'S'
// and one 'G' must appear. Any violation fails the parse with a
// sentinel-wrapped error naming the offending row.
//
// Complexity: O(rows·cols), one pass.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)

	// 1) Header.
	rows, cols, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]rune, rows),
		start: Cell{-1, -1},
		goal:  Cell{-1, -1},
	}
	g.setOffsets(cfg.Conn)

	// 2) Exactly rows lines of exactly cols cells; locate S and G.
	for y := 0; y < rows; y++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("grid: read input: %w", err)
			}

			return nil, fmt.Errorf("%w: declared %d, found %d", ErrRowCount, rows, y)
		}
		line := []rune(strings.TrimRight(sc.Text(), "\r"))
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowLength, y, len(line), cols)
		}
		for x, ch := range line {
			switch ch {
			case Start:
				if g.start.Row >= 0 {
					return nil, fmt.Errorf("%w: second 'S' at row %d", ErrDuplicateMarker, y)
				}
				g.start = Cell{y, x}
			case Goal:
				if g.goal.Row >= 0 {
					return nil, fmt.Errorf("%w: second 'G' at row %d", ErrDuplicateMarker, y)
				}
				g.goal = Cell{y, x}
			}
		}
		g.cells[y] = line
	}

	// 3) Both endpoints are mandatory (and traversable by definition).
	if g.start.Row < 0 {
		return nil, ErrMissingStart
	}
	if g.goal.Row < 0 {
		return nil, ErrMissingGoal
	}

	return g, nil
}

// ReadFile opens path and delegates to Parse.
func ReadFile(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open input: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// parseHeader reads the "<rows> <cols>" line.
func parseHeader(sc *bufio.Scanner) (rows, cols int, err error) {
	if !sc.Scan() {
		if err = sc.Err(); err != nil {
			return 0, 0, fmt.Errorf("grid: read input: %w", err)
		}

		return 0, 0, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %q", ErrBadHeader, sc.Text())
	}
	if rows, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: rows %q", ErrBadHeader, fields[0])
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: cols %q", ErrBadHeader, fields[1])
	}
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}

	return rows, cols, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// StartCell returns the position of the 'S' marker.
func (g *Grid) StartCell() Cell { return g.start }

// GoalCell returns the position of the 'G' marker.
func (g *Grid) GoalCell() Cell { return g.goal }

// At returns the character stored at c. Callers must keep c in bounds.
func (g *Grid) At(c Cell) rune { return g.cells[c.Row][c.Col] }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Passable reports whether c is in bounds and not blocked.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != Blocked
}

// Cost returns the non-negative cost of entering c: 3 for '~', otherwise 1.
func (g *Grid) Cost(c Cell) int64 {
	if g.cells[c.Row][c.Col] == '~' {
		return 3
	}

	return 1
}

// Neighbors appends to dst every passable neighbor of c in the fixed scan
// order and returns the extended slice. Passing a reused dst avoids
// per-call allocations in the search loop.
func (g *Grid) Neighbors(dst []Cell, c Cell) []Cell {
	for _, d := range g.offsets {
		n := Cell{c.Row + d[0], c.Col + d[1]}
		if g.Passable(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// index maps c to its row-major index.
func (g *Grid) index(c Cell) int { return c.Row*g.cols + c.Col }

// cell converts a row-major index back to a Cell.
func (g *Grid) cell(idx int) Cell { return Cell{idx / g.cols, idx % g.cols} }
