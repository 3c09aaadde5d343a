// SPDX-License-Identifier: MIT
// Package rref: sentinel errors and error wrapping.

package rref

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when a determinant or an inverse is
	// requested for a non-square matrix. It is always reported together with
	// matrix.ErrNonSquare, so errors.Is matches either.
	ErrDimensionMismatch = errors.New("rref: dimension mismatch, matrix must be square")

	// ErrNotInvertible is returned by Inverse for a square, singular matrix.
	// It is an expected outcome, not a failure of the algorithm.
	ErrNotInvertible = errors.New("rref: matrix is not invertible")
)

// Operation tags for facade error wrapping.
const (
	opRowReduce   = "RowReduce"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opRank        = "Rank"
	opIsRREF      = "IsRREF"
)

// rrefErrorf wraps err with an operation tag. Use only when err != nil.
func rrefErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// squareErrorf reports a non-square operand as ErrDimensionMismatch while
// keeping the underlying matrix validator error in the chain.
func squareErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrDimensionMismatch, err)
}
