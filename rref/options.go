// SPDX-License-Identifier: MIT

// Package rref: functional configuration for reductions.
//
// Design goals:
//   - Deterministic behavior: no global state, every call resolves its own Options.
//   - Safe by construction: constructors panic only on nonsensical values (programmer error).
//   - Defaults live in Default* constants (single source of truth).
package rref

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the relative tolerance of a reduction. Unless
// WithPivotTolerance fixes an absolute value, pivot search treats
// |v| <= eps · max(m, n) · max|aᵢⱼ| as zero, with aᵢⱼ the input entries.
// Inverse also accepts the left block of the reduced [A | I] as the identity
// when |entry - expected| <= eps.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "rref: WithEpsilon: eps must be finite, non-negative"
	panicPivotTolInvalid  = "rref: WithPivotTolerance: tol must be finite, non-negative"
	panicTraceWriterIsNil = "rref: WithTraceWriter: writer must be non-nil"
)

// traceHeader prefixes each snapshot written by WithTraceWriter.
const traceHeader = "step %d:\n"

// Tracer receives a snapshot of the working matrix after outer iteration
// step (zero-based) of the per-row reduction loop. The snapshot is a copy
// owned by the tracer.
type Tracer func(step int, m matrix.Matrix)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps         float64 // relative tolerance; DefaultEpsilon
	pivotTol    float64 // absolute pivot tolerance, used when pivotTolSet
	pivotTolSet bool    // false: derive the pivot tolerance from eps
	tracer      Tracer  // nil disables tracing
}

// WithEpsilon sets the relative tolerance: it scales the default pivot
// tolerance and bounds the identity check in Inverse. WithEpsilon(0) makes
// pivot search exact unless WithPivotTolerance overrides it.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if !validTolerance(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance fixes an absolute pivot tolerance: entries with
// |v| <= tol count as zero during pivot search, whatever the input scale.
// WithPivotTolerance(0) is the exact "first non-zero entry" rule.
//
// Panics with a stable message when tol is NaN, ±Inf or negative.
func WithPivotTolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) {
		o.pivotTol = tol
		o.pivotTolSet = true
	}
}

// WithTracer installs a hook called after every outer iteration of the
// reduction loop. A nil tracer disables tracing.
func WithTracer(t Tracer) Option {
	return func(o *Options) { o.tracer = t }
}

// WithTraceWriter prints each intermediate state to w, one "step N:" header
// (1-based) followed by the matrix rows. Write errors are ignored; tracing
// never changes the result of a reduction.
func WithTraceWriter(w io.Writer) Option {
	if w == nil {
		panic(panicTraceWriterIsNil)
	}

	return WithTracer(func(step int, m matrix.Matrix) {
		_, _ = fmt.Fprintf(w, traceHeader, step+1)
		_, _ = fmt.Fprint(w, m)
	})
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// pivotTolerance resolves the pivot tolerance for input a: the absolute
// value from WithPivotTolerance, else eps · max(m, n) · max|aᵢⱼ|.
func (o Options) pivotTolerance(a *matrix.Dense) float64 {
	if o.pivotTolSet {
		return o.pivotTol
	}
	rows, cols := a.Shape()

	return o.eps * float64(max(rows, cols)) * a.MaxAbs()
}

// gatherOptions applies user-provided setters on top of defaults, in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// validTolerance reports finite, non-negative values.
func validTolerance(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
