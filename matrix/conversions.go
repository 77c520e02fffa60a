// Package matrix provides converters between Matrixified containers and
// gonum's mat package, for callers that need factorizations this package
// deliberately does not implement (pivoted LU, SVD, eigen decomposition).
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies the logical view of m into a new *mat.Dense, widening
// every element to float64.
// Returns ErrInappropriateSizes for an empty container (gonum forbids 0-sized dense).
//
// Time Complexity: O(r*c)
func ToGonum[T Scalar](m Matrixified[T]) (*mat.Dense, error) {
	s := m.Size()
	if s.Len() == 0 {
		return nil, fmt.Errorf("ToGonum: size %s: %w", s, ErrInappropriateSizes)
	}
	out := mat.NewDense(s.Height, s.Width, nil)
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			out.Set(i, j, float64(m.Elem(i, j)))
		}
	}

	return out, nil
}

// FromGonum copies any gonum matrix into a new untransposed Matrix,
// converting each element with T(x). Integer element types truncate.
//
// Time Complexity: O(r*c)
func FromGonum[T Scalar](g mat.Matrix, opts ...Option) *Matrix[T] {
	r, c := g.Dims()
	out := newMatrix[T](NewPair(c, r), gatherOptions(opts...))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = T(g.At(i, j))
		}
	}

	return out
}
