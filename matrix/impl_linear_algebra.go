// SPDX-License-Identifier: MIT
// Package matrix provides the dimension-checked arithmetic shared by every
// Matrixified implementation: element-wise addition and subtraction, matrix
// multiplication, in-place scalar mutators and comparisons. All functions
// perform strict fail-fast validation and return clear errors on shape
// mismatches.
//
// Notes:
//   - Kernels are written once against Matrixified; Matrix and Vector only
//     forward their operator methods here.
//   - Results of Add/Sub/Mul are always fresh, untransposed *Matrix values;
//     operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// sign selects the element-wise operation of addSub.
type sign int

const (
	plus  sign = 1  // a + b
	minus sign = -1 // a - b
)

// addSub computes out = a ± b element-wise over the logical views.
//
// Implementation:
//   - Stage 1: ValidateSameSize(a, b). Allocate result Matrix(size).
//   - Stage 2: Fast-path if both are untransposed *Matrix: single flat loop.
//     Otherwise, fall back to Elem with fixed i→j order.
//
// Errors:
//   - ErrInappropriateSizes when shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Scalar](a, b Matrixified[T], s sign, opTag string) (*Matrix[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opTag, fmt.Errorf("%s vs %s: %w", a.Size(), b.Size(), err))
	}
	size := a.Size()
	res := newMatrix[T](size, defaultOptions())

	// Fast path: identical physical layouts → single flat loop.
	if da, okA := a.(*Matrix[T]); okA && !da.transposed {
		if db, okB := b.(*Matrix[T]); okB && !db.transposed {
			for idx := range res.data {
				if s == plus {
					res.data[idx] = da.data[idx] + db.data[idx]
				} else {
					res.data[idx] = da.data[idx] - db.data[idx]
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	for i = 0; i < size.Height; i++ {
		for j = 0; j < size.Width; j++ {
			if s == plus {
				res.data[i*size.Width+j] = a.Elem(i, j) + b.Elem(i, j)
			} else {
				res.data[i*size.Width+j] = a.Elem(i, j) - b.Elem(i, j)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Errors: ErrInappropriateSizes unless A.Size() == B.Size().
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Scalar](a, b Matrixified[T]) (*Matrix[T], error) { return addSub(a, b, plus, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Matrix.
// Errors: ErrInappropriateSizes unless A.Size() == B.Size().
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Scalar](a, b Matrixified[T]) (*Matrix[T], error) { return addSub(a, b, minus, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Width == B.Height).
//   - Stage 2: C[r,c] = Σ_i A[r,i]·B[i,c] with a fixed r→c→i order.
//
// Returns:
//   - *Matrix: new Matrix with Height = A.Height and Width = B.Width.
//
// Errors:
//   - ErrInappropriateSizes (inner dimension mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - A Vector operand takes part as its logical 1×n or n×1 view, so a
//     column times a row is the full outer-product matrix.
func Mul[T Scalar](a, b Matrixified[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("%s × %s: %w", a.Size(), b.Size(), err))
	}
	as, bs := a.Size(), b.Size()
	res := newMatrix[T](NewPair(bs.Width, as.Height), defaultOptions())

	var (
		r, c, i int
		acc     T
	)
	for r = 0; r < as.Height; r++ {
		for c = 0; c < bs.Width; c++ {
			acc = zero[T]()
			for i = 0; i < as.Width; i++ {
				acc += a.Elem(r, i) * b.Elem(i, c)
			}
			res.data[r*bs.Width+c] = acc
		}
	}

	return res, nil
}

// apply rewrites every logical element of m in place with f.
func apply[T Scalar](m Matrixified[T], f func(T) T) {
	size := m.Size()
	for r := 0; r < size.Height; r++ {
		for c := 0; c < size.Width; c++ {
			p := m.ElemMut(r, c)
			*p = f(*p)
		}
	}
}

// AddScalar adds v to every element of m in place.
func AddScalar[T Scalar](m Matrixified[T], v T) { apply(m, func(x T) T { return x + v }) }

// SubScalar subtracts v from every element of m in place.
func SubScalar[T Scalar](m Matrixified[T], v T) { apply(m, func(x T) T { return x - v }) }

// Scale multiplies every element of m by v in place.
func Scale[T Scalar](m Matrixified[T], v T) { apply(m, func(x T) T { return x * v }) }

// DivScalar divides every element of m by v in place.
// Returns ErrZeroDivision (and leaves m untouched) when v is zero.
func DivScalar[T Scalar](m Matrixified[T], v T) error {
	if v == zero[T]() {
		return matrixErrorf(opDivScalar, ErrZeroDivision)
	}
	apply(m, func(x T) T { return x / v })

	return nil
}

// Equal reports whether a and b have the same logical size and identical
// elements at every logical index.
func Equal[T Scalar](a, b Matrixified[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	size := a.Size()
	for r := 0; r < size.Height; r++ {
		for c := 0; c < size.Width; c++ {
			if a.Elem(r, c) != b.Elem(r, c) {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether a and b have the same logical size and every pair
// of elements differs by at most eps (WithEpsilon, DefaultEpsilon otherwise).
// Comparison happens on float64-widened values.
func AllClose[T Scalar](a, b Matrixified[T], opts ...Option) bool {
	if a.Size() != b.Size() {
		return false
	}
	eps := gatherOptions(opts...).eps
	size := a.Size()
	for r := 0; r < size.Height; r++ {
		for c := 0; c < size.Width; c++ {
			// Negated form so that NaN never compares as close.
			if !(math.Abs(float64(a.Elem(r, c))-float64(b.Elem(r, c))) <= eps) {
				return false
			}
		}
	}

	return true
}
