package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rref"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{
			name: "reduce only",
			in:   "0, 1, 5, -4\n1 4 3 -2\n2 7 1 -2\n",
			want: "rref:\n[1, 0, -17, 0]\n[0, 1, 5, 0]\n[0, 0, 0, 1]\n",
		},
		{
			name: "determinant and inverse",
			args: []string{"-det", "-inv"},
			in:   "1 2\n3 4\n",
			want: "rref:\n[1, 0]\n[0, 1]\ndet: -2\ninverse:\n[-2, 1]\n[1.5, -0.5]\n",
		},
		{
			name: "singular",
			args: []string{"-det", "-inv"},
			in:   "# dependent rows\n1 2\n2 4\n",
			want: "rref:\n[1, 2]\n[0, 0]\ndet: 0\ninverse: matrix is not invertible\n",
		},
		{
			name: "trace",
			args: []string{"-trace"},
			in:   "1 2\n3 4\n",
			want: "step 1:\n[1, 2]\n[0, -2]\nstep 2:\n[1, 0]\n[0, 1]\nrref:\n[1, 0]\n[0, 1]\n",
		},
		{
			name: "near singular at default tolerance",
			args: []string{"-det", "-inv"},
			in:   "0.1 0.3\n0.3 0.9\n",
			want: "rref:\n[1, 3]\n[0, 0]\ndet: 0\ninverse: matrix is not invertible\n",
		},
		{
			name: "exact pivot search",
			args: []string{"-pivot-tol", "0"},
			in:   "1 2\n1 2.0000000000001\n",
			want: "rref:\n[1, 0]\n[0, 1]\n",
		},
		{
			name: "eps scales the pivot tolerance",
			args: []string{"-eps", "1e-5", "-inv"},
			in:   "1 1\n1 1.000001\n",
			want: "rref:\n[1, 1]\n[0, 0]\ninverse: matrix is not invertible\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tc.args, strings.NewReader(tc.in), &out, io.Discard))
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"-det"}, strings.NewReader("1 2 3\n4 5 6\n"), &out, io.Discard)
	require.ErrorIs(t, err, rref.ErrDimensionMismatch)
	require.True(t, strings.HasPrefix(out.String(), "rref:\n"), "the reduction is printed before the failure")

	out.Reset()
	err = run(nil, strings.NewReader("1 2\n3\n"), &out, io.Discard)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	out.Reset()
	err = run(nil, strings.NewReader("1 x\n"), &out, io.Discard)
	require.ErrorIs(t, err, matrix.ErrParse)

	out.Reset()
	require.Error(t, run([]string{"-nope"}, strings.NewReader("1\n"), &out, io.Discard))

	out.Reset()
	require.Error(t, run([]string{"-eps", "-1"}, strings.NewReader("1\n"), &out, io.Discard))
}

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-h"}, strings.NewReader(""), &out, &errOut))
	require.Empty(t, out.String(), "usage goes to the error stream")
	require.Contains(t, errOut.String(), "-pivot-tol")

	errOut.Reset()
	require.Error(t, run([]string{"-nope"}, strings.NewReader("1\n"), &out, &errOut))
	require.Contains(t, errOut.String(), "flag provided but not defined")
	require.Empty(t, out.String())
}
