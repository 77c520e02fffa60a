// SPDX-License-Identifier: MIT

// Package matrix - Vector: a dense one-dimensional container viewed as a
// degenerate matrix (1×n row or n×1 column).
//
// Purpose:
//   - Share the Matrixified contract with Matrix so vectors combine with
//     matrices through the same kernels.
//   - Keep Transpose O(1): the flag switches between the row and the column
//     view of one flat buffer.
//
// Invariants:
//   - Exactly one of the logical dimensions equals the length, the other 1.
//   - The length never changes after construction.

package matrix

import (
	"fmt"
	"strings"
)

// Vector is a dense sequence of T with a row (default) or column view.
type Vector[T Scalar] struct {
	data       []T  // flat storage, len == length
	transposed bool // false: 1×n row; true: n×1 column
	length     int  // fixed at construction
	actual     Pair // logical shape
}

var (
	_ Matrixified[float64] = (*Vector[float64])(nil)
	_ fmt.Stringer         = (*Vector[float64])(nil)
)

// mustRowShape asserts the construction contract of Vector.
func mustRowShape(size Pair) {
	mustNonNegative(size)
	if size.Height != 1 {
		panic(panicVectorHeight)
	}
}

// ZerosVector creates a row vector of size.Width zeros.
// size.Height must be exactly 1; anything else is a programmer error and panics.
func ZerosVector[T Scalar](size Pair) *Vector[T] {
	mustRowShape(size)

	return &Vector[T]{
		data:   make([]T, size.Width),
		length: size.Width,
		actual: size,
	}
}

// FillVector creates a row vector of size.Width copies of v.
// size.Height must be exactly 1 (panics otherwise).
func FillVector[T Scalar](size Pair, v T) *Vector[T] {
	out := ZerosVector[T](size)
	for i := range out.data {
		out.data[i] = v
	}

	return out
}

// NewVector creates a row vector holding a copy of values.
func NewVector[T Scalar](values ...T) *Vector[T] {
	out := ZerosVector[T](NewPair(len(values), 1))
	copy(out.data, values)

	return out
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.length }

// Size returns the logical shape: 1×n as a row, n×1 as a column.
func (v *Vector[T]) Size() Pair { return v.actual }

// IsTransposed reports whether the vector is in column view.
func (v *Vector[T]) IsTransposed() bool { return v.transposed }

// Transpose switches between row and column view in O(1).
func (v *Vector[T]) Transpose() {
	v.transposed = !v.transposed
	v.actual.transpose()
}

// index maps a validated logical (row, col) to the storage index.
func (v *Vector[T]) index(row, col int) int {
	if v.transposed {
		return row
	}

	return col
}

// Elem returns the element at logical (row, col).
// Panics when (row, col) is outside Size().
func (v *Vector[T]) Elem(row, col int) T {
	mustContain(v.actual, row, col)

	return v.data[v.index(row, col)]
}

// ElemMut returns a pointer to the element at logical (row, col).
// Panics when (row, col) is outside Size().
func (v *Vector[T]) ElemMut(row, col int) *T {
	mustContain(v.actual, row, col)

	return &v.data[v.index(row, col)]
}

// At returns the element at logical (row, col) or ErrInvalidIndex.
func (v *Vector[T]) At(row, col int) (T, error) {
	if err := ValidateIndex(v.actual, row, col); err != nil {
		return zero[T](), indexErrorf(opAt, row, col, err)
	}

	return v.data[v.index(row, col)], nil
}

// Set stores x at logical (row, col) or returns ErrInvalidIndex.
func (v *Vector[T]) Set(row, col int, x T) error {
	if err := ValidateIndex(v.actual, row, col); err != nil {
		return indexErrorf(opSet, row, col, err)
	}
	v.data[v.index(row, col)] = x

	return nil
}

// Norm returns the Euclidean length of the vector.
func (v *Vector[T]) Norm() float64 { return norm(v.data) }

// AsVector returns the receiver itself; a Vector is always a vector.
func (v *Vector[T]) AsVector() (*Vector[T], error) { return v, nil }

// Values returns a copy of the elements in storage order.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.length)
	copy(out, v.data)

	return out
}

// Clone returns a deep copy with the same orientation.
func (v *Vector[T]) Clone() *Vector[T] {
	cp := *v
	cp.data = make([]T, len(v.data))
	copy(cp.data, v.data)

	return &cp
}

// String renders the vector as one bracketed row, suffixed with ᵀ in column view.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteString("]")
	if v.transposed {
		b.WriteString("ᵀ")
	}

	return b.String()
}

// Neg returns a new vector with every element negated; orientation is kept.
func (v *Vector[T]) Neg() *Vector[T] {
	out := v.Clone()
	Scale[T](out, -one[T]())

	return out
}

// Add returns v + rhs folded back into a Vector with v's orientation.
// Errors: ErrInappropriateSizes unless rhs.Size() == v.Size().
func (v *Vector[T]) Add(rhs Matrixified[T]) (*Vector[T], error) {
	m, err := Add[T](v, rhs)
	if err != nil {
		return nil, err
	}

	return v.fold(m)
}

// Sub returns v - rhs folded back into a Vector with v's orientation.
// Errors: ErrInappropriateSizes unless rhs.Size() == v.Size().
func (v *Vector[T]) Sub(rhs Matrixified[T]) (*Vector[T], error) {
	m, err := Sub[T](v, rhs)
	if err != nil {
		return nil, err
	}

	return v.fold(m)
}

// fold converts a same-shaped Matrix result back into a Vector.
// The size check of Add/Sub guarantees the result is degenerate.
func (v *Vector[T]) fold(m *Matrix[T]) (*Vector[T], error) {
	out, err := m.AsVector()
	if err != nil {
		return nil, err
	}
	if v.transposed {
		out.Transpose()
	}

	return out, nil
}

// Mul returns v × rhs as a Matrix. The product is not folded into a Vector:
// a column times a row is a full matrix.
// Errors: ErrInappropriateSizes unless v.Size().Width == rhs.Size().Height.
func (v *Vector[T]) Mul(rhs Matrixified[T]) (*Matrix[T], error) { return Mul[T](v, rhs) }

// Div returns v × rhs⁻¹ as a Matrix.
// Errors: ErrDivByVector when rhs is a Vector; otherwise as Matrix.Div.
func (v *Vector[T]) Div(rhs Matrixified[T]) (*Matrix[T], error) { return div[T](v, rhs) }
