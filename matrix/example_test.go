// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/matrix"
)

// ExampleDense_DoColumns shows the column-major traversal used by the
// sparse dense → COO conversion.
func ExampleDense_DoColumns() {
	m, _ := matrix.NewDenseFromRows([][]int{{1, 0, 3}, {0, 5, 0}})
	m.DoColumns(func(i, j int, v int) bool {
		if v != 0 {
			fmt.Printf("(%d,%d)=%d ", i, j, v)
		}
		return true
	})
	fmt.Println()
	// Output: (0,0)=1 (1,1)=5 (0,2)=3
}

func ExampleSub() {
	a, _ := matrix.NewDenseFromRows([][]float64{{3, 1}, {0, 2}})
	b, _ := matrix.NewDenseFromRows([][]float64{{1, 1}, {1, 1}})
	d, _ := matrix.Sub[float64](a, b)
	fmt.Print(d)
	// Output:
	// [2, 0]
	// [-1, 1]
}
