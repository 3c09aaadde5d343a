// SPDX-License-Identifier: MIT

// Package matrix - Dense, the row-major float64 matrix every kernel works on.
// Entry (i, j) lives at data[i*cols+j]. Accessors return errors instead of
// panicking, and stored values are finite unless the policy is switched off.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxSet      = "Set"         // method tag used in error wrappers
	ctxFromRows = "NewFromRows" // ctor tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps a stable "Dense.<method>(row,col): <sentinel>" shape; the sentinel
// survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default above).
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns an r×c matrix of zeros with the default NaN/Inf policy.
// Both dimensions must be positive (ErrInvalidDimensions otherwise).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewFromRows builds a Dense matrix from an already-parsed rectangular grid.
//
// Implementation:
//   - Stage 1: require at least one row and one column.
//   - Stage 2: require every row to have len(rows[0]) entries.
//   - Stage 3: copy values row by row, rejecting NaN/±Inf.
//
// Behavior highlights:
//   - The input slices are copied; later edits to rows do not leak into the matrix.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid or empty first row.
//   - ErrDimensionMismatch (wrapped with the offending row) for ragged input.
//   - ErrNaNInf (wrapped with coordinates) for non-finite values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				ctxFromRows, i, len(rows[i]), m.c, ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ {
			if isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = rows[i][j]
		}
	}

	return m, nil
}

func (m *Dense) Rows() int { return m.r }

func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// offset maps (row, col) to its index in data, or ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads entry (row, col). Out-of-range coordinates give a wrapped ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col). Besides ErrOutOfRange it refuses NaN and ±Inf
// with ErrNaNInf while the matrix enforces the finite-value policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// MaxAbs returns the largest |entry|, the scale used for relative tolerances.
func (m *Dense) MaxAbs() float64 {
	return floats.Norm(m.data, math.Inf(1))
}

// Clone returns a deep copy of the Dense matrix (numeric policy preserved).
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used inside the package.
func (m *Dense) clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, validateNaNInf: m.validateNaNInf}
}

// ToRows copies the matrix into a fresh [][]float64 (row-major).
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer: one bracketed row per line, %g entries.
// Negative zero is printed as 0.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			v := m.data[i*m.c+j]
			if v == 0 {
				v = 0 // print -0 as 0
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
