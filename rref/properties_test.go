// SPDX-License-Identifier: MIT

package rref_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rref"
)

const (
	propCases   = 400
	propMaxDim  = 5
	propSpread  = 3 // entries drawn from [-propSpread, propSpread]
	propTol     = 1e-9
	propCloseTo = 1e-8
)

// PropertySuite checks structural invariants on a seeded batch of small
// integer matrices at default options, cross-checking numbers against gonum.
type PropertySuite struct {
	suite.Suite
	cases []*matrix.Dense
}

// SetupSuite generates the batch. Roughly a third of the cases get a forced
// zero row and another third a duplicated row, so rank deficiency is common.
func (s *PropertySuite) SetupSuite() {
	rng := rand.New(rand.NewSource(42))
	s.cases = make([]*matrix.Dense, 0, propCases)
	for k := 0; k < propCases; k++ {
		r := 1 + rng.Intn(propMaxDim)
		c := 1 + rng.Intn(propMaxDim)
		if k%2 == 0 {
			c = r // keep plenty of square inputs
		}
		rows := make([][]float64, r)
		for i := range rows {
			rows[i] = make([]float64, c)
			for j := range rows[i] {
				rows[i][j] = float64(rng.Intn(2*propSpread+1) - propSpread)
			}
		}
		switch rng.Intn(3) {
		case 0:
			rows[rng.Intn(r)] = make([]float64, c)
		case 1:
			if r > 1 {
				src, dst := rng.Intn(r), rng.Intn(r)
				for j := range rows[dst] {
					rows[dst][j] = 2 * rows[src][j]
				}
			}
		}
		m, err := matrix.NewFromRows(rows)
		s.Require().NoError(err)
		s.cases = append(s.cases, m)
	}
}

func (s *PropertySuite) reduce(m matrix.Matrix) *rref.Result {
	res, err := rref.RowReduce(m)
	s.Require().NoError(err)

	return res
}

// TestResultIsRREF: every output satisfies the four RREF conditions.
func (s *PropertySuite) TestResultIsRREF() {
	for _, a := range s.cases {
		res := s.reduce(a)
		ok, err := rref.IsRREF(res.Matrix, propTol)
		s.Require().NoError(err)
		s.Require().True(ok, "input:\n%v\noutput:\n%v", a, res.Matrix)
		s.Require().Len(res.Pivots, res.Rank())
	}
}

// TestIdempotent: reducing an RREF matrix changes nothing.
func (s *PropertySuite) TestIdempotent() {
	for _, a := range s.cases {
		first := s.reduce(a)
		second := s.reduce(first.Matrix)
		ok, err := matrix.AllClose(first.Matrix, second.Matrix, propTol)
		s.Require().NoError(err)
		s.Require().True(ok, "input:\n%v", a)
		s.Require().Equal(first.PivotColumns(), second.PivotColumns())
	}
}

// TestInputUntouched: the caller's matrix is never written.
func (s *PropertySuite) TestInputUntouched() {
	for _, a := range s.cases {
		before := a.ToRows()
		s.reduce(a)
		s.Require().Equal(before, a.ToRows())
	}
}

// TestRankMatchesSVD compares the pivot count with gonum's SVD rank.
func (s *PropertySuite) TestRankMatchesSVD() {
	for _, a := range s.cases {
		ga, err := matrix.ToGonum(a)
		s.Require().NoError(err)
		var svd mat.SVD
		s.Require().True(svd.Factorize(ga, mat.SVDNone))

		s.Require().Equal(svd.Rank(propTol), s.reduce(a).Rank(), "input:\n%v", a)
	}
}

// TestDeterminantMatchesGonum compares square determinants with mat.Det.
func (s *PropertySuite) TestDeterminantMatchesGonum() {
	for _, a := range s.cases {
		if !a.IsSquare() {
			continue
		}
		ga, err := matrix.ToGonum(a)
		s.Require().NoError(err)
		want := mat.Det(ga)

		got, err := rref.Determinant(a)
		s.Require().NoError(err)
		s.Require().InDelta(want, got, 1e-6*math.Max(1, math.Abs(want)), "input:\n%v", a)
	}
}

// TestInverseRoundTrip: invertible inputs give A·A⁻¹ ≈ I, singular ones
// report ErrNotInvertible.
func (s *PropertySuite) TestInverseRoundTrip() {
	var inverted, singular int
	for _, a := range s.cases {
		if !a.IsSquare() {
			continue
		}
		ga, err := matrix.ToGonum(a)
		s.Require().NoError(err)
		d := mat.Det(ga)

		inv, err := rref.Inverse(a)
		switch {
		case math.Abs(d) > 0.5: // integer matrix: |det| >= 1 when nonsingular
			s.Require().NoError(err, "input:\n%v", a)
			id, err := matrix.NewIdentity(a.Rows())
			s.Require().NoError(err)
			p, err := matrix.Mul(a, inv)
			s.Require().NoError(err)
			ok, err := matrix.AllClose(id, p, propCloseTo)
			s.Require().NoError(err)
			s.Require().True(ok, "input:\n%v\nA·A⁻¹:\n%v", a, p)
			inverted++
		case math.Abs(d) < propTol:
			s.Require().True(errors.Is(err, rref.ErrNotInvertible), "input:\n%v err: %v", a, err)
			s.Require().Nil(inv)
			singular++
		}
	}
	s.Require().Positive(inverted)
	s.Require().Positive(singular)
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
