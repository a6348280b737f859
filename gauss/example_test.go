package gauss_test

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/gauss"
	"github.com/katalvlaran/gaussjordan/matrix"
)

func ExampleInverse() {
	a := matrix.MustFromRows([][]float64{{2, 0}, {0, 4}})
	inv, err := gauss.Inverse(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)
	// Output:
	// [0.5, 0]
	// [0, 0.25]
}

func ExampleDirectMotion() {
	a := matrix.MustFromRows([][]float64{{0, 1}, {2, 2}})
	b := matrix.Column(3, 4)
	swaps, _ := gauss.DirectMotion(a, b, gauss.Naive{})
	_ = gauss.CounterMotion(a, b)
	fmt.Println("swaps:", swaps)
	fmt.Print(b)
	// Output:
	// swaps: 1
	// [-1]
	// [3]
}

func ExampleRank() {
	a := matrix.MustFromRows([][]float64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}})
	fmt.Println(gauss.Rank(a))
	// Output: 2
}
