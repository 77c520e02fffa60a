// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Vector-only products and normalization used by geometry callers
//     (camera bases, direction vectors): Dot, Cross, Normalize.
//   - Orientation is irrelevant here: vectors are read in storage order.

package matrix

import "fmt"

// Dot returns Σ a[i]·b[i].
// Errors: ErrInappropriateSizes when the lengths differ.
// Complexity: O(n).
func Dot[T Scalar](a, b *Vector[T]) (T, error) {
	if a.length != b.length {
		return zero[T](), matrixErrorf(opDot, fmt.Errorf("len %d vs %d: %w", a.length, b.length, ErrInappropriateSizes))
	}
	acc := zero[T]()
	for i := range a.data {
		acc += a.data[i] * b.data[i]
	}

	return acc, nil
}

// Cross returns the 3-D cross product a × b as a row vector.
// Errors: ErrNonThirdMatrix unless both vectors have exactly 3 elements.
func Cross[T Scalar](a, b *Vector[T]) (*Vector[T], error) {
	if a.length != 3 || b.length != 3 {
		return nil, matrixErrorf(opCross, ErrNonThirdMatrix)
	}
	x, y := a.data, b.data

	return NewVector(
		x[1]*y[2]-x[2]*y[1],
		x[2]*y[0]-x[0]*y[2],
		x[0]*y[1]-x[1]*y[0],
	), nil
}

// Normalize scales v in place to unit Euclidean length.
// Errors: ErrZeroDivision when v has zero norm (v is left untouched).
// Notes: integer element types truncate toward zero.
func (v *Vector[T]) Normalize() error {
	n := v.Norm()
	if n == 0 {
		return matrixErrorf(opNormalize, ErrZeroDivision)
	}
	for i, x := range v.data {
		v.data[i] = T(float64(x) / n)
	}

	return nil
}
