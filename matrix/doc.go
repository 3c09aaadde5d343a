// Package matrix provides the dense real matrix used by the row-reduction kernel.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors
//     (At/Set never panic on bad indices) and a NaN/Inf rejecting numeric policy.
//   - The three elementary row operations as in-place Dense methods:
//     SwapRows, ScaleRow and AddRowMultiple.
//   - Helpers for augmented-matrix work: NewIdentity, Augment, Slice, Mul,
//     AllClose, IsIdentity, DiagProduct.
//   - Interop with gonum (ToGonum, FromGonum) and a plain-text reader (ParseRows).
//
// Indices are zero-based throughout. All errors are package sentinels
// (see errors.go) and are matched with errors.Is.
//
// See rref for the reduction algorithms built on top of this package.
package matrix
