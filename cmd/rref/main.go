// Command rref reads a matrix from stdin (one row per line, entries separated
// by commas and/or spaces) and prints its reduced row echelon form.
//
//	$ printf '1 2\n3 4\n' | rref -det -inv
//	rref:
//	[1, 0]
//	[0, 1]
//	det: -2
//	inverse:
//	[-2, 1]
//	[1.5, -0.5]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rref"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "rref:", err)
		os.Exit(1)
	}
}

// run is main without process globals, so it can be tested. Results go to
// out, usage and flag diagnostics to errOut. -h is not an error.
func run(args []string, in io.Reader, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("rref", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var (
		wantDet = fs.Bool("det", false, "print the determinant (square input only)")
		wantInv = fs.Bool("inv", false, "print the inverse (square input only)")
		trace   = fs.Bool("trace", false, "print the matrix after every reduction step")
		eps     = fs.Float64("eps", rref.DefaultEpsilon, "relative tolerance for pivot search and the identity check in -inv")
		tol     = fs.Float64("pivot-tol", 0, "absolute pivot tolerance; entries with |v| <= tol count as zero (default: relative to -eps)")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if !finiteNonNegative(*eps) || !finiteNonNegative(*tol) {
		return errors.New("-eps and -pivot-tol must be finite and non-negative")
	}

	a, err := matrix.ParseRows(in)
	if err != nil {
		return err
	}

	opts := []rref.Option{rref.WithEpsilon(*eps)}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "pivot-tol" {
			opts = append(opts, rref.WithPivotTolerance(*tol))
		}
	})
	reduceOpts := opts[:len(opts):len(opts)]
	if *trace {
		reduceOpts = append(reduceOpts, rref.WithTraceWriter(out))
	}

	res, err := rref.RowReduce(a, reduceOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "rref:\n%s", res.Matrix)

	if *wantDet {
		det, err := res.Determinant()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "det: %g\n", det)
	}

	if *wantInv {
		inv, err := rref.Inverse(a, opts...)
		switch {
		case errors.Is(err, rref.ErrNotInvertible):
			fmt.Fprintln(out, "inverse: matrix is not invertible")
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "inverse:\n%s", inv)
		}
	}

	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
