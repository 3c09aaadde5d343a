// SPDX-License-Identifier: MIT

// Package rref - the row reducer.
//
// Purpose:
//   - Drive a working matrix to RREF with the pivot-search/eliminate loop.
//   - Expose RowReduce and Rank as the public entry points.
//
// Determinism:
//   - Rows are visited top to bottom exactly once; columns left to right.
//   - The final ordering pass is a stable insertion sort, so ties keep row order.

package rref

import (
	"github.com/katalvlaran/rowreduce/matrix"
)

// run executes normalisation, the per-row loop, the ordering pass and the flush.
//
// Implementation:
//   - Stage 1: normalize (zero rows down, top-left leading 1).
//   - Stage 2: for r = 0..m-1: find the pivot column c of row r (|v| > tol);
//     skip and record -1 for a row without one; otherwise scale row r by
//     1/m[r][c]; for every other row a with m[a][c] != 0 add -m[a][c] · row r
//     to row a. The pivot is then exactly 1 and column c exactly 0 elsewhere;
//     rounding residue on those entries is snapped. The tracer (if any) sees
//     a snapshot after every r.
//   - Stage 3: order rows by recorded pivot column, zero rows last.
//   - Stage 4: entries the search treated as zero become exactly 0.
//
// Pivot columns are recorded when found rather than searched again later:
// pivot rows have been rescaled and no longer match the tolerance's scale.
//
// Errors:
//   - matrix.ErrNaNInf when a pivot reciprocal or a row update overflows.
//
// Complexity:
//   - Time O(m²·n), Space O(m) beyond the working matrix (O(m·n) per traced step).
func (rd *reducer) run() error {
	origin, err := rd.normalize()
	if err != nil {
		return err
	}

	rows := rd.m.Rows()
	for r := 0; r < rows; r++ {
		c := 0
		if r > 0 || !origin {
			c = rd.leading(r)
		}
		rd.piv[r] = c
		if c >= 0 {
			if err = rd.eliminate(r, c); err != nil {
				return err
			}
		}
		if rd.tracer != nil {
			rd.tracer(r, rd.m.Clone())
		}
	}

	rd.order()
	rd.flush()

	return nil
}

// eliminate turns (r, c) into a leading 1 and clears column c in every other row.
func (rd *reducer) eliminate(r, c int) error {
	if err := rd.scale(r, 1/rd.at(r, c)); err != nil {
		return err
	}
	rd.set(r, c, 1)

	rows := rd.m.Rows()
	for a := 0; a < rows; a++ {
		if a == r {
			continue
		}
		f := rd.at(a, c)
		if f == 0 {
			continue
		}
		if err := rd.addMultiple(-f, r, a); err != nil {
			return err
		}
		rd.set(a, c, 0)
	}

	return nil
}

// order stably sorts rows by pivot column with zero rows last, using tracked
// swaps. The per-row loop never swaps, so rank-deficient inputs can leave a
// zero row above a pivot row, or pivot columns out of order
// (e.g. [[1,1,0],[0,0,1],[0,1,0]]).
func (rd *reducer) order() {
	rows, cols := rd.m.Shape()
	key := func(i int) int {
		if rd.piv[i] < 0 {
			return cols // zero rows sort after every pivot column
		}

		return rd.piv[i]
	}
	for i := 1; i < rows; i++ {
		for k := i; k > 0 && key(k-1) > key(k); k-- {
			rd.swap(k-1, k)
		}
	}
}

// flush zeroes what pivot search treated as zero: every entry of a row
// without a pivot, and the entries left of a row's pivot. With exact search
// these are already 0.
func (rd *reducer) flush() {
	rows, cols := rd.m.Shape()
	for i := 0; i < rows; i++ {
		end := rd.piv[i]
		if end < 0 {
			end = cols
		}
		for j := 0; j < end; j++ {
			if rd.at(i, j) != 0 {
				rd.set(i, j, 0)
			}
		}
	}
}

// pivots lists the recorded leading entries in row order.
func (rd *reducer) pivots() []Pivot {
	var out []Pivot
	for r, c := range rd.piv {
		if c >= 0 {
			out = append(out, Pivot{Row: r, Col: c})
		}
	}

	return out
}

// RowReduce computes the reduced row echelon form of m.
//
// Implementation:
//   - Stage 1: validate m is non-nil; clone it into a private *matrix.Dense.
//   - Stage 2: resolve the pivot tolerance from the options and the input scale.
//   - Stage 3: run the reducer (normalize → per-row loop → ordering → flush).
//   - Stage 4: package the RREF, pivots and determinant accumulator in a Result.
//
// Behavior highlights:
//   - The caller's matrix is never mutated.
//   - All-zero input is legal: the result is the same all-zero matrix, rank 0.
//   - Rank-deficient input is legal: zero rows end up at the bottom.
//   - Rank is numerical: a row whose entries all fall within the pivot
//     tolerance of zero counts as zero (see DefaultEpsilon).
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrNaNInf if a foreign Matrix yields
//     non-finite values or an intermediate value overflows. All wrapped with "RowReduce".
//
// Complexity:
//   - Time O(m²·n), Space O(m·n).
func RowReduce(m matrix.Matrix, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, rrefErrorf(opRowReduce, err)
	}
	work, err := matrix.AsDense(m)
	if err != nil {
		return nil, rrefErrorf(opRowReduce, err)
	}

	o := gatherOptions(opts...)

	return reduceOwned(work, o.pivotTolerance(work), o.tracer, opRowReduce)
}

// reduceOwned reduces a matrix the caller has already copied, with an
// already-resolved pivot tolerance.
func reduceOwned(work *matrix.Dense, tol float64, tracer Tracer, tag string) (*Result, error) {
	rd := newReducer(work, tol, tracer)
	if err := rd.run(); err != nil {
		return nil, rrefErrorf(tag, err)
	}

	return &Result{
		Matrix:   rd.m,
		Pivots:   rd.pivots(),
		detScale: rd.det,
	}, nil
}

// Rank returns the number of pivots in the RREF of m.
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	res, err := RowReduce(m, opts...)
	if err != nil {
		return 0, rrefErrorf(opRank, err)
	}

	return res.Rank(), nil
}
