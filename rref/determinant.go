// SPDX-License-Identifier: MIT

package rref

import (
	"github.com/katalvlaran/rowreduce/matrix"
)

// Determinant returns det(A) recovered from the reduction that produced r.
//
// Implementation:
//   - Stage 1: require a square matrix (ErrDimensionMismatch otherwise).
//   - Stage 2: det = detScale · Πdiag(RREF). A square RREF is either the
//     identity (product 1) or has a zero bottom row; rank < n returns 0
//     directly.
//   - Stage 3: normalise -0 to +0.
//
// Errors:
//   - ErrDimensionMismatch (with matrix.ErrNonSquare) for non-square results.
//
// Complexity:
//   - Time O(n), Space O(1).
func (r *Result) Determinant() (float64, error) {
	if err := matrix.ValidateSquareNonNil(r.Matrix); err != nil {
		return 0, squareErrorf(opDeterminant, err)
	}
	if r.Rank() < r.Matrix.Rows() {
		return 0, nil
	}
	prod, err := matrix.DiagProduct(r.Matrix)
	if err != nil {
		return 0, rrefErrorf(opDeterminant, err)
	}
	det := r.detScale * prod
	if det == 0 {
		det = 0
	}

	return det, nil
}

// Determinant computes det(m) for a square matrix by row reduction.
// The shape is checked before any work is done; m is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix; ErrDimensionMismatch (with matrix.ErrNonSquare).
func Determinant(m matrix.Matrix, opts ...Option) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, rrefErrorf(opDeterminant, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, squareErrorf(opDeterminant, err)
	}
	res, err := RowReduce(m, opts...)
	if err != nil {
		return 0, rrefErrorf(opDeterminant, err)
	}

	return res.Determinant()
}
