// SPDX-License-Identifier: MIT

package rref

import (
	"github.com/katalvlaran/rowreduce/matrix"
)

// Pivot is the (row, column) position of a leading 1 in the reduced matrix.
type Pivot struct {
	Row int
	Col int
}

// Result is the outcome of one RowReduce call.
//
// Matrix is a fresh *matrix.Dense in RREF owned by the caller. Pivots lists
// the leading 1s in row order; their columns are strictly increasing.
type Result struct {
	Matrix *matrix.Dense
	Pivots []Pivot

	// detScale is the accumulator of the run: det(A) = detScale · Πdiag(Matrix).
	detScale float64
}

// Rank is the number of pivots (non-zero rows of the RREF).
func (r *Result) Rank() int { return len(r.Pivots) }

// IsSquare reports whether the reduced matrix is square.
func (r *Result) IsSquare() bool { return r.Matrix.IsSquare() }

// PivotColumns returns the pivot columns in increasing order.
func (r *Result) PivotColumns() []int {
	cols := make([]int, len(r.Pivots))
	for i, p := range r.Pivots {
		cols[i] = p.Col
	}

	return cols
}
