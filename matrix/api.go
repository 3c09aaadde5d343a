// SPDX-License-Identifier: MIT
// Package matrix: constructors and whole-matrix helpers.
//
// Purpose:
//   - Identity construction, horizontal augmentation and block extraction for
//     augmented-matrix algorithms ([A | I] inversion).
//   - Product and tolerance comparison used to verify results (A·A⁻¹ ≈ I).
//
// Notes:
//   - Every helper returns a fresh *Dense; operands are never mutated.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Operation tags for facade error wrapping.
const (
	opIdentity = "Identity"
	opAugment  = "Augment"
	opSlice    = "Slice"
	opMul      = "Mul"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if isNonFinite(v) {
				return nil, denseErrorf(ctxAt, i, j, ErrNaNInf)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// AsDense returns a *Dense holding the same values as m. A *Dense input is
// cloned, so the result never aliases the argument.
//
// Errors: ErrNilMatrix, plus any At error from a foreign implementation.
// Complexity: O(r*c).
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	return asDense(m)
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions for n <= 0.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// Augment concatenates a and b horizontally into [a | b].
//
// Implementation:
//   - Stage 1: ValidateNotNil on both, ValidateSameRows.
//   - Stage 2: allocate r×(ca+cb) and copy each row of a then b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opAugment).
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	out, err := NewDense(ad.r, ad.c+bd.c)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	for i := 0; i < ad.r; i++ {
		base := i * out.c
		copy(out.data[base:base+ad.c], ad.data[i*ad.c:(i+1)*ad.c])
		copy(out.data[base+ad.c:base+out.c], bd.data[i*bd.c:(i+1)*bd.c])
	}

	return out, nil
}

// Slice copies the h×w block whose top-left corner is (r0, c0).
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for h<=0 or w<=0;
//     ErrOutOfRange when the block leaves the matrix.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func Slice(m Matrix, r0, c0, h, w int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if h <= 0 || w <= 0 {
		return nil, matrixErrorf(opSlice, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+h > m.Rows() || c0+w > m.Cols() {
		return nil, matrixErrorf(opSlice, ErrOutOfRange)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSlice, err)
	}

	out, err := NewDense(h, w)
	if err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	for i := 0; i < h; i++ {
		from := (r0+i)*src.c + c0
		copy(out.data[i*w:(i+1)*w], src.data[from:from+w])
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a,b), ValidateMulCompatible.
//   - Stage 2: i-k-j loop over flat buffers (row-major friendly).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, k, j int
		aik     float64
	)
	for i = 0; i < ad.r; i++ {
		for k = 0; k < ad.c; k++ {
			aik = ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most tol in absolute value.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf for a non-finite or negative tol.
//
// Complexity:
//   - Time O(r*c), Space O(1) for Dense inputs.
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if isNonFinite(tol) || tol < 0 {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range ad.data {
		if !scalar.EqualWithinAbs(ad.data[k], bd.data[k], tol) {
			return false, nil
		}
	}

	return true, nil
}

// IsIdentity reports whether m is square and |m[i,j] - δij| <= tol everywhere.
// A non-square matrix is simply not the identity (no error).
//
// Complexity: O(n²).
func IsIdentity(m Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, err
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return false, err
	}

	return AllClose(m, id, tol)
}

// DiagProduct returns the product of the main-diagonal entries of a square matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func DiagProduct(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return math.NaN(), err
	}
	prod := 1.0
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return math.NaN(), err
		}
		prod *= v
	}

	return prod, nil
}
