// SPDX-License-Identifier: MIT

// Package rref - accumulator-tracking elementary row operations.
//
// A reducer owns one working matrix and one determinant accumulator for the
// lifetime of a single reduction. The three operations below are the only
// way the working matrix changes (apart from snapping rounding residue on
// entries that are exactly 1 or 0 by construction, see reduce.go).
//
// Accumulator convention (det(A) = acc · det(R) where R is the current matrix):
//   - swap rows       → det(R) changes sign        → acc = -acc
//   - scale row by λ  → det(R) is multiplied by λ  → acc = acc / λ
//   - add λ·row r     → det(R) unchanged           → acc unchanged

package rref

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rowreduce/matrix"
)

// panicRowOp reports a contract violation inside the reducer: an index it
// produced itself was out of range, or a zero scale reached ScaleRow.
const panicRowOp = "rref: elementary row operation contract violated: %v"

// reducer is the per-call state of a reduction run. It is never shared.
type reducer struct {
	m      *matrix.Dense // working copy, exclusively owned
	det    float64       // determinant accumulator, starts at 1
	tol    float64       // resolved pivot tolerance, absolute
	piv    []int         // pivot column chosen for each row, -1 for none
	tracer Tracer        // optional per-iteration hook
}

// newReducer takes ownership of m; callers must pass a private copy.
// tol is the already-resolved pivot tolerance (see Options.pivotTolerance).
func newReducer(m *matrix.Dense, tol float64, tracer Tracer) *reducer {
	piv := make([]int, m.Rows())
	for i := range piv {
		piv[i] = -1
	}

	return &reducer{m: m, det: 1, tol: tol, piv: piv, tracer: tracer}
}

// swap exchanges rows r and s, with their recorded pivots, and negates the
// accumulator. r == s is a no-op.
func (rd *reducer) swap(r, s int) {
	if r == s {
		return
	}
	if err := rd.m.SwapRows(r, s); err != nil {
		panic(fmt.Sprintf(panicRowOp, err))
	}
	rd.piv[r], rd.piv[s] = rd.piv[s], rd.piv[r]
	rd.det = -rd.det
}

// scale multiplies row r by lambda and divides the accumulator by lambda.
// lambda == 0 is a programming error and panics. A non-finite lambda
// (1/pivot overflowing for a subnormal pivot) or an overflowing row is
// reported as matrix.ErrNaNInf.
func (rd *reducer) scale(r int, lambda float64) error {
	if err := rd.m.ScaleRow(r, lambda); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return err
		}
		panic(fmt.Sprintf(panicRowOp, err))
	}
	rd.det /= lambda

	return nil
}

// addMultiple adds lambda times row r to row s. The accumulator is untouched.
// An update that overflows is reported as matrix.ErrNaNInf.
func (rd *reducer) addMultiple(lambda float64, r, s int) error {
	if err := rd.m.AddRowMultiple(lambda, r, s); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return err
		}
		panic(fmt.Sprintf(panicRowOp, err))
	}

	return nil
}

// at reads an entry the reducer knows to be in range.
func (rd *reducer) at(i, j int) float64 {
	v, err := rd.m.At(i, j)
	if err != nil {
		panic(fmt.Sprintf(panicRowOp, err))
	}

	return v
}

// set writes an entry the reducer knows to be in range and finite.
func (rd *reducer) set(i, j int, v float64) {
	if err := rd.m.Set(i, j, v); err != nil {
		panic(fmt.Sprintf(panicRowOp, err))
	}
}

// leading returns the pivot column of row r, or -1 for a zero row.
func (rd *reducer) leading(r int) int {
	c, err := rd.m.Leading(r, rd.tol)
	if err != nil {
		panic(fmt.Sprintf(panicRowOp, err))
	}

	return c
}

// isZero applies the pivot tolerance to a single entry.
func (rd *reducer) isZero(v float64) bool {
	return v <= rd.tol && v >= -rd.tol
}
