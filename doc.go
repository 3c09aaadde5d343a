// Package rowreduce computes the reduced row echelon form (RREF) of real
// matrices and derives the determinant and inverse from the same reduction.
//
// What it brings together:
//
//	• matrix/   – Dense row-major float64 storage, the three elementary row
//	              operations, [A | B] augmentation, slicing, products,
//	              tolerance comparisons, a text parser and gonum interop
//	• rref/     – RowReduce, Rank, Determinant, Inverse and IsRREF, with
//	              functional options for tolerances and step tracing
//	• cmd/rref/ – a small command that reduces a matrix read from stdin
//
// Every reduction works on a private copy of its input and records each row
// operation's effect on the determinant, so det(A) falls out of the RREF
// without a second factorisation:
//
//	swap rows       → acc = -acc
//	scale row by λ  → acc = acc / λ
//	add λ·row r     → acc unchanged
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	res, _ := rref.RowReduce(a)   // [[1 0] [0 1]]
//	det, _ := res.Determinant()   // -2
//	inv, _ := rref.Inverse(a)     // [[-2 1] [1.5 -0.5]]
//
//	go get github.com/katalvlaran/rowreduce/rref
package rowreduce
