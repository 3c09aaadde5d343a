// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Conversions always copy; neither side aliases the other's storage.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// Errors: ErrNilMatrix, plus any At error from a foreign implementation.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense, applying the default
// numeric policy (NaN/±Inf rejected).
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty gonum matrix), ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}
