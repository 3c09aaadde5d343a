// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense, row operations and helpers.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// twoByTwo is the running example [[1,2],[3,4]].
func twoByTwo(t testing.TB) *matrix.Dense {
	t.Helper()

	return mustDense(t, [][]float64{{1, 2}, {3, 4}})
}
