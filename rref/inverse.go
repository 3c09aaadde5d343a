// SPDX-License-Identifier: MIT

package rref

import (
	"github.com/katalvlaran/rowreduce/matrix"
)

// Inverse computes A⁻¹ by reducing the augmented matrix [A | I].
//
// Implementation:
//   - Stage 1: ValidateNotNil(m) and ValidateSquare(m) before touching data.
//   - Stage 2: build [A | I] (a fresh n×2n Dense) and reduce it in place. The
//     pivot tolerance is resolved against A, so by default an entry counts
//     as zero when |v| <= eps · n · max|aᵢⱼ|.
//   - Stage 3: accept the left n×n block as the identity within eps
//     (WithEpsilon, default DefaultEpsilon); return the right block.
//
// A matrix that is singular up to rounding, e.g. [[0.1, 0.3], [0.3, 0.9]],
// leaves a residue row below the tolerance; the left block then keeps a zero
// row and the result is ErrNotInvertible rather than a huge "inverse".
// WithEpsilon(0) or WithPivotTolerance(0) restore exact pivot search.
//
// Behavior highlights:
//   - A singular input is an expected outcome reported as ErrNotInvertible.
//   - m is never mutated; the returned matrix is owned by the caller.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - ErrDimensionMismatch (with matrix.ErrNonSquare) for non-square input.
//   - ErrNotInvertible when the left block is not the identity.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, squareErrorf(opInverse, err)
	}
	a, err := matrix.AsDense(m)
	if err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	aug, err := matrix.Augment(a, id)
	if err != nil {
		return nil, rrefErrorf(opInverse, err)
	}

	// The tolerance follows A's scale, not the identity block's.
	res, err := reduceOwned(aug, o.pivotTolerance(a), o.tracer, opInverse)
	if err != nil {
		return nil, err
	}

	left, err := matrix.Slice(res.Matrix, 0, 0, n, n)
	if err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	ok, err := matrix.IsIdentity(left, o.eps)
	if err != nil {
		return nil, rrefErrorf(opInverse, err)
	}
	if !ok {
		return nil, rrefErrorf(opInverse, ErrNotInvertible)
	}

	inv, err := matrix.Slice(res.Matrix, 0, n, n, n)
	if err != nil {
		return nil, rrefErrorf(opInverse, err)
	}

	return inv, nil
}
