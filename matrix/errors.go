// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels (optionally wrapped with
// context via %w) and tests MUST check them via errors.Is. No exported function
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when context
// is essential; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> operation-specific (zero scale, parse).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Augment with different row counts, Mul where a.Cols != b.Rows, or
	// ragged rows in NewFromRows/ParseRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, ScaleRow, parsing).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrZeroScale is returned by ScaleRow when asked to multiply a row by zero.
	// Scaling by zero is not an elementary row operation: it destroys the row.
	ErrZeroScale = errors.New("matrix: row scale factor must be non-zero")

	// ErrParse marks a token that could not be read as a float64 in ParseRows.
	ErrParse = errors.New("matrix: cannot parse entry")
)
