package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecspace/matrix"
)

// ExampleMatrix_Inverse computes a determinant, then the adjugate inverse.
func ExampleMatrix_Inverse() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	if err := m.CompDeterm(); err != nil {
		fmt.Println(err)
		return
	}
	det, _ := m.Determinant()
	inv, _ := m.Inverse()

	fmt.Println("det =", det)
	fmt.Print(inv)

	// Output:
	// det = -2
	// [-2, 1]
	// [1.5, -0.5]
}

// ExampleMatrix_Transpose shows that transposition is a view, not a copy.
func ExampleMatrix_Transpose() {
	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	m.Transpose()
	fmt.Println(m.Size(), m.Elem(2, 1))

	// Output:
	// 3x2 6
}

// ExampleVector_Mul contrasts the inner and the outer product of two vectors.
func ExampleVector_Mul() {
	row := matrix.NewVector(1, 2)
	col := matrix.NewVector(3, 4)
	col.Transpose()

	inner, _ := row.Mul(col)
	outer, _ := col.Mul(row)
	fmt.Print(inner)
	fmt.Print(outer)

	// Output:
	// [11]
	// [3, 6]
	// [4, 8]
}

// ExampleAdd_mismatch shows how shape errors are matched.
func ExampleAdd_mismatch() {
	a := matrix.Zeros[float64](matrix.NewPair(2, 1))
	b := matrix.Zeros[float64](matrix.NewPair(1, 2))

	_, err := matrix.Add[float64](a, b)
	fmt.Println(errors.Is(err, matrix.ErrInappropriateSizes))
	fmt.Println(err)

	// Output:
	// true
	// Add: 1x2 vs 2x1: matrix: inappropriate sizes
}
