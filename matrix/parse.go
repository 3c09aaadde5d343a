// SPDX-License-Identifier: MIT

// Package matrix - text ingestion.
//
// ParseRows reads a plain-text grid: one matrix row per line, entries separated
// by commas and/or whitespace. Blank lines and lines starting with '#' are skipped.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const opParseRows = "ParseRows"

// commentPrefix marks a line ignored by ParseRows.
const commentPrefix = "#"

// isEntrySeparator splits on commas, semicolons and any Unicode whitespace.
func isEntrySeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// ParseRows reads a rectangular grid of float64 values from r and returns it
// as a Dense matrix.
//
// Implementation:
//   - Stage 1: scan line by line; skip blank and comment lines.
//   - Stage 2: split each line on separators and parse every token with strconv.ParseFloat.
//   - Stage 3: hand the collected rows to NewFromRows (shape + finiteness checks).
//
// Errors:
//   - ErrParse (wrapped with line number and token) for a malformed entry.
//   - ErrInvalidDimensions when no data rows are found.
//   - ErrDimensionMismatch for ragged rows; ErrNaNInf for "NaN"/"Inf" tokens.
//   - Any read error from r.
//
// Complexity:
//   - Time O(input size), Space O(r*c).
func ParseRows(r io.Reader) (*Dense, error) {
	var (
		rows   [][]float64
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fields := strings.FieldsFunc(line, isEntrySeparator)
		row := make([]float64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: %q: %w", opParseRows, lineNo, tok, ErrParse)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(opParseRows, err)
	}

	m, err := NewFromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opParseRows, err)
	}

	return m, nil
}
