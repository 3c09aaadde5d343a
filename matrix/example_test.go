package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rowreduce/matrix"
)

// ExampleParseRows reads a comma/space separated grid.
func ExampleParseRows() {
	m, err := matrix.ParseRows(strings.NewReader("0, 1, 5, -4\n1 4 3 -2\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// [0, 1, 5, -4]
	// [1, 4, 3, -2]
}

// ExampleAugment builds [A | I] for inversion.
func ExampleAugment() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	id, _ := matrix.NewIdentity(2)

	aug, err := matrix.Augment(a, id)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(aug)
	// Output:
	// [1, 2, 1, 0]
	// [3, 4, 0, 1]
}

// ExampleDense_SwapRows shows the elementary row operations in sequence.
func ExampleDense_SwapRows() {
	m, _ := matrix.NewFromRows([][]float64{{0, 2}, {1, 3}})

	_ = m.SwapRows(0, 1)           // [[1,3],[0,2]]
	_ = m.ScaleRow(1, 0.5)         // [[1,3],[0,1]]
	_ = m.AddRowMultiple(-3, 1, 0) // [[1,0],[0,1]]
	fmt.Print(m)
	// Output:
	// [1, 0]
	// [0, 1]
}
