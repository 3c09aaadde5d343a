package rref_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/matrix"
)

// hide masks the concrete *matrix.Dense so code under test takes its generic path.
type hide struct{ matrix.Matrix }

// mustDense builds a *matrix.Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}
