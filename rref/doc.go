// Package rref reduces a real matrix to reduced row echelon form (RREF) and
// derives the determinant and the inverse from that reduction.
//
// What
//
//   - RowReduce returns a Result holding the RREF, the pivot positions and the
//     determinant scale recorded during the run.
//   - Determinant returns det(A) for square A (ErrDimensionMismatch otherwise).
//   - Inverse reduces [A | I] and returns the right block when the left block
//     became the identity, ErrNotInvertible when it did not.
//   - IsRREF checks the four RREF conditions; Rank counts pivots.
//
// How
//
//	Every mutation is one of the three elementary row operations (swap, scale,
//	add a multiple of another row). Each run owns a determinant accumulator
//	initialised to 1: a swap negates it, scaling a row by λ divides it by λ,
//	adding a multiple leaves it alone. At the end det(A) = acc · Πdiag(RREF).
//
//	The run is:
//	  1. Zero-row normalisation: all-zero rows move to the bottom (stable), and
//	     the top-left entry is made a leading 1 when column 0 is not all zero.
//	  2. Per-row reduction: the first non-zero entry of each row becomes a
//	     pivot, is scaled to 1 and eliminated from every other row.
//	  3. Ordering: rows are stably sorted by pivot column, zero rows last.
//	  4. Flush: entries the pivot search treated as zero become exactly 0.
//
// Ownership
//
//	Inputs are cloned before reduction; the caller's matrix is never mutated.
//	No state is shared between calls.
//
// Tolerances
//
//   - Epsilon (WithEpsilon, default 1e-9) is relative. Pivot search treats
//     |v| <= eps · max(m, n) · max|aᵢⱼ| as zero, so rank, determinant and
//     invertibility are numerical: [[0.1, 0.3], [0.3, 0.9]] has rank 1 even
//     when rounding leaves a non-zero residue in its second row. The left block of the
//     reduced [A | I] must also be within eps of the identity.
//   - Pivot tolerance (WithPivotTolerance) replaces the relative rule with an
//     absolute one; WithPivotTolerance(0) is the exact "first non-zero entry".
//
// Diagnostics
//
//	WithTracer / WithTraceWriter receive a snapshot of the working matrix after
//	each outer iteration of the per-row loop.
//
// Complexity (m rows, n columns)
//
//   - Time:   O(m²·n)
//   - Memory: O(m·n) for the working copy (O(n²) extra for inversion).
//
// Usage
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	res, err := rref.RowReduce(a)
//	det, err := res.Determinant() // -2
//	inv, err := rref.Inverse(a)   // [[-2, 1], [1.5, -0.5]]
//	if errors.Is(err, rref.ErrNotInvertible) { ... }
package rref
