// SPDX-License-Identifier: MIT
// Package: adjfile
//
// adjfile.go - digit-run matrix parser.

package adjfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/katalvlaran/graphmetrics/graph"
)

// ErrValue is returned when a digit run does not fit in an int64.
var ErrValue = errors.New("adjfile: value out of range")

// maxLineBytes bounds a single row; a 10k-node row of 6-digit weights fits.
const maxLineBytes = 1 << 20

// digitRun matches one value.
var digitRun = regexp.MustCompile(`[0-9]+`)

// row is one data line with its 1-based source line number.
type row struct {
	line   int
	values []int64
}

// Parse reads a square matrix from r.
//
// Errors:
//   - graph.ErrInvalidGraph when a row's value count differs from the row count.
//   - ErrValue when a value overflows int64.
//   - read errors from r.
func Parse(r io.Reader) ([][]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows []row
	lineNo := 0
	for sc.Scan() {
		lineNo++
		runs := digitRun.FindAllString(sc.Text(), -1)
		if len(runs) == 0 {
			continue
		}
		values := make([]int64, len(runs))
		for i, s := range runs {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, s, ErrValue)
			}
			values[i] = v
		}
		rows = append(rows, row{line: lineNo, values: values})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("adjfile: read: %w", err)
	}

	n := len(rows)
	out := make([][]int64, n)
	for i, rw := range rows {
		if len(rw.values) != n {
			return nil, fmt.Errorf("line %d: row has %d values, expected %d: %w",
				rw.line, len(rw.values), n, graph.ErrInvalidGraph)
		}
		out[i] = rw.values
	}

	return out, nil
}

// ReadFile parses the matrix stored at path.
func ReadFile(path string) ([][]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("adjfile: %w", err)
	}
	defer f.Close()

	adj, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return adj, nil
}

// Load parses path and builds the graph.
func Load(path string) (*graph.Graph, error) {
	adj, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
