package separator_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ndissect/builder"
	"github.com/katalvlaran/ndissect/separator"
)

// ExampleFind splits a 5×5 grid along its anti-diagonal.
func ExampleFind() {
	g, _ := builder.Build(builder.Grid(5, 5))

	res, err := separator.Find(context.Background(), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("levels:", res.LevelSizes)
	fmt.Println("l1:", res.L1)
	fmt.Println("separator:", res.Separator.Sorted())
	fmt.Println("sides:", res.Component1.Len(), res.Component2.Len())
	// Output:
	// levels: [1 2 3 4 5 4 3 2 1]
	// l1: 4
	// separator: [0,4 1,3 2,2 3,1 4,0]
	// sides: 15 15
}
