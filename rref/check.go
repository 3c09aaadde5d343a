// SPDX-License-Identifier: MIT

package rref

import (
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// IsRREF reports whether m is in reduced row echelon form, treating entries
// with |v| <= tol as zero and accepting leading entries within tol of 1:
//   - every non-zero row starts with a leading 1;
//   - leading 1s move strictly right going down;
//   - zero rows are below every non-zero row;
//   - a column holding a leading 1 is zero in every other row.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrNaNInf for a NaN, infinite or negative tol.
//
// Complexity:
//   - Time O(m·n + rank·m), Space O(m·n) for the Dense copy.
func IsRREF(m matrix.Matrix, tol float64) (bool, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return false, rrefErrorf(opIsRREF, matrix.ErrNaNInf)
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return false, rrefErrorf(opIsRREF, err)
	}

	var (
		rows     = d.Rows()
		prevCol  = -1
		seenZero bool
		v        float64
	)
	for r := 0; r < rows; r++ {
		c, err := d.Leading(r, tol)
		if err != nil {
			return false, rrefErrorf(opIsRREF, err)
		}
		if c < 0 {
			seenZero = true
			continue
		}
		if seenZero || c <= prevCol {
			return false, nil
		}
		if v, err = d.At(r, c); err != nil {
			return false, rrefErrorf(opIsRREF, err)
		}
		if math.Abs(v-1) > tol {
			return false, nil
		}
		for a := 0; a < rows; a++ {
			if a == r {
				continue
			}
			if v, err = d.At(a, c); err != nil {
				return false, rrefErrorf(opIsRREF, err)
			}
			if math.Abs(v) > tol {
				return false, nil
			}
		}
		prevCol = c
	}

	return true, nil
}
