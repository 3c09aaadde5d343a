// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the construction shape.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.False(t, m.IsSquare())
}

// TestNewFromRows covers the happy path and each rejection class.
func TestNewFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err)
	require.Equal(t, src, m.ToRows())

	// The input is copied.
	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewFromRows([][]float64{{math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the default numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	require.NoError(t, m.Set(0, 0, 7.89))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := twoByTwo(t)
	clone := m.Clone()

	require.NoError(t, clone.Set(0, 0, 3.0)) // modify the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	cv, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cv)
}

// TestString checks the bracketed row format and the -0 normalisation.
func TestString(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2.5}, {-3, math.Copysign(0, -1)}})
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestMaxAbs(t *testing.T) {
	require.Equal(t, 7.5, mustDense(t, [][]float64{{1, -7.5}, {3, 0}}).MaxAbs())
	require.Equal(t, 0.0, mustDense(t, [][]float64{{0, 0}}).MaxAbs())
}
