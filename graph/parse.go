package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads the "<num_vertices> <num_edges>" text format from r and
// builds a Graph. Blank lines and '#' comment lines are skipped anywhere
// after the header. Parsing is strict: the first non-skipped line must be
// exactly two integer tokens, every edge record must be exactly
// three integers with in-range endpoints, and the number of records must
// equal the declared edge count. On any violation the error names the
// offending line and wraps the matching sentinel; no partial Graph is
// returned.
//
// Complexity: O(n + m) time, one pass over the input.
func Parse(r io.Reader, opts ...Option) (*Graph, error) {
	sc := bufio.NewScanner(r)

	// 1) Header: "<num_vertices> <num_edges>".
	n, m, lineNo, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	g, err := New(n, opts...)
	if err != nil {
		return nil, err
	}

	// 2) Edge records until EOF, skipping blanks and comments.
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		u, v, w, recErr := parseEdgeRecord(line)
		if recErr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, recErr)
		}
		if addErr := g.AddEdge(u, v, w); addErr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, addErr)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: read input: %w", err)
	}

	// 3) The record count must agree with the header.
	if g.EdgeCount() != m {
		return nil, fmt.Errorf("%w: declared %d, found %d", ErrEdgeCount, m, g.EdgeCount())
	}

	return g, nil
}

// ReadFile opens path and delegates to Parse.
func ReadFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open input: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// parseHeader consumes lines until the header is found, tolerating leading
// blanks and comments, and returns (num_vertices, num_edges, lines read).
func parseHeader(sc *bufio.Scanner) (n, m, lines int, err error) {
	for sc.Scan() {
		lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, 0, lines, fmt.Errorf("%w: got %q", ErrBadHeader, line)
		}
		if n, err = strconv.Atoi(fields[0]); err != nil {
			return 0, 0, lines, fmt.Errorf("%w: vertex count %q", ErrBadHeader, fields[0])
		}
		if m, err = strconv.Atoi(fields[1]); err != nil {
			return 0, 0, lines, fmt.Errorf("%w: edge count %q", ErrBadHeader, fields[1])
		}
		if m < 0 {
			return 0, 0, lines, fmt.Errorf("%w: edge count %d", ErrBadHeader, m)
		}

		return n, m, lines, nil
	}
	if err = sc.Err(); err != nil {
		return 0, 0, lines, fmt.Errorf("graph: read input: %w", err)
	}

	return 0, 0, lines, fmt.Errorf("%w: empty input", ErrBadHeader)
}

// parseEdgeRecord splits one "<u> <v> <w>" line into its integer fields.
func parseEdgeRecord(line string) (u, v int, w int64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: got %q", ErrBadEdgeRecord, line)
	}
	if u, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: u=%q", ErrBadEdgeRecord, fields[0])
	}
	if v, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: v=%q", ErrBadEdgeRecord, fields[1])
	}
	if w, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: w=%q", ErrBadEdgeRecord, fields[2])
	}

	return u, v, w, nil
}
