// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on Dense.
//
// Purpose:
//   - Provide the three elementary row operations (swap, scale, add-multiple)
//     as the only in-place row mutations offered by the package.
//   - Provide read-only row queries used by elimination kernels (leading entry lookup).
//
// Determinism:
//   - Fixed column order (left to right) for every loop; no allocation.

package matrix

import "fmt"

// Operation tags for row-operation error wrapping.
const (
	opSwapRows       = "SwapRows"
	opScaleRow       = "ScaleRow"
	opAddRowMultiple = "AddRowMultiple"
	opLeading        = "Leading"
)

// rowOpErrorf wraps err with a row-operation tag and the row arguments.
func rowOpErrorf(op string, r, s int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, r, s, err)
}

// checkRow validates a single row index.
func (m *Dense) checkRow(r int) error {
	if r < 0 || r >= m.r {
		return ErrOutOfRange
	}

	return nil
}

// SwapRows exchanges rows r and s in place.
//
// Implementation:
//   - Stage 1: validate both indices.
//   - Stage 2: swap the two row segments element by element (no allocation).
//
// Behavior highlights:
//   - r == s is legal and leaves the matrix unchanged.
//
// Errors:
//   - ErrOutOfRange (wrapped) when r or s is outside [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(r, s int) error {
	if err := m.checkRow(r); err != nil {
		return rowOpErrorf(opSwapRows, r, s, err)
	}
	if err := m.checkRow(s); err != nil {
		return rowOpErrorf(opSwapRows, r, s, err)
	}
	if r == s {
		return nil
	}

	rOff, sOff := r*m.c, s*m.c
	for j := 0; j < m.c; j++ {
		m.data[rOff+j], m.data[sOff+j] = m.data[sOff+j], m.data[rOff+j]
	}

	return nil
}

// ScaleRow multiplies every entry of row r by lambda.
//
// Implementation:
//   - Stage 1: validate index, reject lambda == 0 and non-finite lambda.
//   - Stage 2: check every product is finite; the row is left untouched otherwise.
//   - Stage 3: scale in place.
//
// Errors:
//   - ErrOutOfRange, ErrZeroScale, ErrNaNInf (all wrapped). ErrNaNInf also
//     covers a product that overflows.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScaleRow(r int, lambda float64) error {
	if err := m.checkRow(r); err != nil {
		return rowOpErrorf(opScaleRow, r, r, err)
	}
	if lambda == 0 {
		return rowOpErrorf(opScaleRow, r, r, ErrZeroScale)
	}
	if isNonFinite(lambda) {
		return rowOpErrorf(opScaleRow, r, r, ErrNaNInf)
	}

	off := r * m.c
	for j := 0; j < m.c; j++ {
		if isNonFinite(m.data[off+j] * lambda) {
			return rowOpErrorf(opScaleRow, r, r, ErrNaNInf)
		}
	}
	for j := 0; j < m.c; j++ {
		m.data[off+j] *= lambda
	}

	return nil
}

// AddRowMultiple performs row[s] += lambda * row[r]. Row s is written only
// when every updated entry is finite.
//
// Errors:
//   - ErrOutOfRange when r or s is invalid.
//   - ErrNaNInf for non-finite lambda or an update that overflows.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddRowMultiple(lambda float64, r, s int) error {
	if err := m.checkRow(r); err != nil {
		return rowOpErrorf(opAddRowMultiple, r, s, err)
	}
	if err := m.checkRow(s); err != nil {
		return rowOpErrorf(opAddRowMultiple, r, s, err)
	}
	if isNonFinite(lambda) {
		return rowOpErrorf(opAddRowMultiple, r, s, ErrNaNInf)
	}
	if lambda == 0 {
		return nil
	}

	rOff, sOff := r*m.c, s*m.c
	for j := 0; j < m.c; j++ {
		if isNonFinite(m.data[sOff+j] + lambda*m.data[rOff+j]) {
			return rowOpErrorf(opAddRowMultiple, r, s, ErrNaNInf)
		}
	}
	for j := 0; j < m.c; j++ {
		m.data[sOff+j] += lambda * m.data[rOff+j]
	}

	return nil
}

// Leading returns the column of the first entry in row r whose magnitude
// exceeds tol, or -1 when the whole row is within tol of zero.
// With tol == 0 this is the exact "first non-zero entry".
//
// Errors:
//   - ErrOutOfRange (wrapped) for an invalid row.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) Leading(r int, tol float64) (int, error) {
	if err := m.checkRow(r); err != nil {
		return -1, rowOpErrorf(opLeading, r, r, err)
	}
	off := r * m.c
	for j := 0; j < m.c; j++ {
		v := m.data[off+j]
		if v > tol || v < -tol {
			return j, nil
		}
	}

	return -1, nil
}
