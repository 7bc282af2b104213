package elim_test

import (
	"fmt"

	"github.com/katalvlaran/ndissect/elim"
	"github.com/katalvlaran/ndissect/matrix"
)

// ExampleEliminate eliminates the first row of a 2×2 SPD matrix.
func ExampleEliminate() {
	L, _ := matrix.NewDenseFrom([][]float64{
		{4, 2},
		{2, 3},
	})

	f, err := elim.Eliminate(L, []int{0}, []int{1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print("BT:\n", f.BT)
	fmt.Print("W:\n", f.W)
	// Output:
	// BT:
	// [1, 0]
	// [0.5, 1]
	// W:
	// [4, 0]
	// [0, 2]
}
