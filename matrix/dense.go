// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major, lazily transposed) & accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*width + j,
//     laid out once in the physical (construction) orientation.
//   - Represent transposition by a flag: Transpose is O(1) and never moves data;
//     every logical access swaps (row, col) when the flag is set.
//   - Guarantee safety at the public surface: At/Set return errors, Elem/ElemMut
//     assert (programmer error) instead.
//
// Complexity quicksheet:
//   - Zeros/FillWith/Identity: O(r*c); Elem/ElemMut/At/Set/Transpose: O(1);
//     Clone: O(r*c); Norm: O(r*c); AsVector: O(n).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense two-dimensional container of T.
//   - data holds initial.Len() elements row-major in the physical orientation.
//   - actual is the logical shape: initial, or its swap when transposed.
//   - det caches the determinant of the physical storage once computed.
type Matrix[T Scalar] struct {
	data        []T  // contiguous row-major storage (len == initial.Len())
	transposed  bool // logical view swaps (row, col) when true
	initial     Pair // physical shape, fixed at construction
	actual      Pair // logical shape seen by callers
	det         T    // cached determinant, valid only when hasDet
	hasDet      bool // cache presence flag
	trackDeterm bool // drop the cache on mutation (options.go)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrixified[float64] = (*Matrix[float64])(nil)
	_ fmt.Stringer         = (*Matrix[float64])(nil)
)

// newMatrix allocates a zero matrix with the given physical shape and policy.
func newMatrix[T Scalar](size Pair, o Options) *Matrix[T] {
	mustNonNegative(size)

	return &Matrix[T]{
		data:        make([]T, size.Len()),
		initial:     size,
		actual:      size,
		trackDeterm: o.trackDeterm,
	}
}

// Zeros creates a matrix of the given size filled with the additive identity.
// Size components must be non-negative (panics otherwise).
// Complexity: Time O(r*c), Space O(r*c).
func Zeros[T Scalar](size Pair, opts ...Option) *Matrix[T] {
	return newMatrix[T](size, gatherOptions(opts...))
}

// FillWith creates a matrix of the given size with every element set to v.
// Complexity: Time O(r*c), Space O(r*c).
func FillWith[T Scalar](size Pair, v T, opts ...Option) *Matrix[T] {
	m := newMatrix[T](size, gatherOptions(opts...))
	for i := range m.data {
		m.data[i] = v
	}

	return m
}

// Identity creates the square identity matrix of the given size.
// MAIN DESCRIPTION:
//   - Ones on the main diagonal, zeros elsewhere.
//
// Behavior highlights:
//   - The determinant cache is pre-populated with one; Inverse works without
//     an explicit CompDeterm.
//
// Errors:
//   - ErrNonSquareMatrix when size.Width != size.Height.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Identity[T Scalar](size Pair, opts ...Option) (*Matrix[T], error) {
	if err := ValidateSquare(size); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	m := newMatrix[T](size, gatherOptions(opts...))
	n := size.Width
	for d := 0; d < n; d++ {
		m.data[d*n+d] = one[T]()
	}
	m.setDeterm(one[T]())

	return m, nil
}

// FromRows builds a matrix from row slices (copied). All rows must share one
// length; ragged input returns ErrInappropriateSizes. Empty input yields 0×0.
// Complexity: Time O(r*c), Space O(r*c).
func FromRows[T Scalar](rows [][]T, opts ...Option) (*Matrix[T], error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	m := newMatrix[T](NewPair(width, len(rows)), gatherOptions(opts...))
	for i, row := range rows {
		if len(row) != width {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), width, ErrInappropriateSizes))
		}
		copy(m.data[i*width:(i+1)*width], row)
	}

	return m, nil
}

// Size returns the logical shape. Complexity: O(1).
func (m *Matrix[T]) Size() Pair { return m.actual }

// IsTransposed reports whether the logical view is transposed.
func (m *Matrix[T]) IsTransposed() bool { return m.transposed }

// Transpose flips the logical view in O(1): the flag toggles and the logical
// shape swaps; storage and the determinant cache are untouched.
func (m *Matrix[T]) Transpose() {
	m.transposed = !m.transposed
	m.actual.transpose()
}

// offset maps a logical (row, col) to the physical row-major index.
// Assumes the coordinates were already validated.
func (m *Matrix[T]) offset(row, col int) int {
	if m.transposed {
		row, col = col, row
	}

	return row*m.initial.Width + col
}

// Elem returns the element at logical (row, col).
// Panics when (row, col) is outside Size(); use At for a checked read.
func (m *Matrix[T]) Elem(row, col int) T {
	mustContain(m.actual, row, col)

	return m.data[m.offset(row, col)]
}

// ElemMut returns a pointer to the element at logical (row, col).
// Panics when (row, col) is outside Size(). Drops the determinant cache
// unless the matrix was built WithStaleDeterminant.
func (m *Matrix[T]) ElemMut(row, col int) *T {
	mustContain(m.actual, row, col)
	m.touch()

	return &m.data[m.offset(row, col)]
}

// At returns the element at logical (row, col) or ErrInvalidIndex.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := ValidateIndex(m.actual, row, col); err != nil {
		return zero[T](), indexErrorf(opAt, row, col, err)
	}

	return m.data[m.offset(row, col)], nil
}

// Set stores v at logical (row, col) or returns ErrInvalidIndex.
// Drops the determinant cache under the default policy.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := ValidateIndex(m.actual, row, col); err != nil {
		return indexErrorf(opSet, row, col, err)
	}
	m.touch()
	m.data[m.offset(row, col)] = v

	return nil
}

// Norm returns the Euclidean (Frobenius) norm over all elements.
// Transposition does not affect the result.
func (m *Matrix[T]) Norm() float64 { return norm(m.data) }

// AsVector converts a degenerate matrix into a row Vector.
// MAIN DESCRIPTION:
//   - Copies the elements in row-major reading order of the logical view.
//
// Behavior highlights:
//   - The receiver is not modified; a column view is read top to bottom.
//
// Errors:
//   - ErrNotAVector when neither logical dimension equals 1.
//
// Complexity:
//   - Time O(n), Space O(n).
func (m *Matrix[T]) AsVector() (*Vector[T], error) {
	if !m.actual.IsDegenerate() {
		return nil, matrixErrorf(opAsVector, fmt.Errorf("size %s: %w", m.actual, ErrNotAVector))
	}
	// Both physical orientations store a degenerate shape contiguously.
	out := ZerosVector[T](NewPair(m.actual.Len(), 1))
	copy(out.data, m.data)

	return out, nil
}

// Determinant returns the cached determinant and whether it is present.
func (m *Matrix[T]) Determinant() (T, bool) { return m.det, m.hasDet }

// setDeterm stores d in the cache.
func (m *Matrix[T]) setDeterm(d T) {
	m.det = d
	m.hasDet = true
}

// touch applies the determinant cache policy before a mutation.
func (m *Matrix[T]) touch() {
	if m.trackDeterm {
		m.hasDet = false
	}
}

// Clone returns a deep copy: same storage contents, orientation, cache and policy.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := *m
	cp.data = make([]T, len(m.data))
	copy(cp.data, m.data)

	return &cp
}

// Rows materializes the logical view as row slices (row-major reading order).
func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, m.actual.Height)
	for i := range out {
		out[i] = make([]T, m.actual.Width)
		for j := range out[i] {
			out[i][j] = m.data[m.offset(i, j)]
		}
	}

	return out
}

// String renders the logical view row by row for diagnostics.
// Not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.actual.Height; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.actual.Width; j++ {
			b.WriteString(fmt.Sprintf("%v", m.data[m.offset(i, j)]))
			if j+1 < m.actual.Width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Neg returns a new matrix with every element multiplied by -1.
// The receiver is left untouched; orientation is preserved.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out := m.Clone()
	out.hasDet = false
	Scale[T](out, -one[T]())

	return out
}

// Add returns m + rhs as a new Matrix (see package-level Add).
func (m *Matrix[T]) Add(rhs Matrixified[T]) (*Matrix[T], error) { return Add[T](m, rhs) }

// Sub returns m - rhs as a new Matrix (see package-level Sub).
func (m *Matrix[T]) Sub(rhs Matrixified[T]) (*Matrix[T], error) { return Sub[T](m, rhs) }

// Mul returns m × rhs as a new Matrix (see package-level Mul).
func (m *Matrix[T]) Mul(rhs Matrixified[T]) (*Matrix[T], error) { return Mul[T](m, rhs) }

// Div returns m × rhs⁻¹.
// MAIN DESCRIPTION:
//   - Matrix division is multiplication by the right-hand side's inverse.
//
// Errors:
//   - ErrDivByVector when rhs is a *Vector.
//   - Any Inverse failure of rhs (ErrNonSquareMatrix, ErrUnknownDeterminant,
//     ErrZeroDeterminant), then any Mul failure (ErrInappropriateSizes).
//
// Notes:
//   - rhs must have its determinant computed (CompDeterm) beforehand, exactly
//     as Inverse requires.
func (m *Matrix[T]) Div(rhs Matrixified[T]) (*Matrix[T], error) {
	return div[T](m, rhs)
}

// div is the shared division kernel for Matrix and Vector dividends.
func div[T Scalar](lhs, rhs Matrixified[T]) (*Matrix[T], error) {
	var divisor *Matrix[T]
	switch r := rhs.(type) {
	case *Vector[T]:
		return nil, matrixErrorf(opDiv, ErrDivByVector)
	case *Matrix[T]:
		divisor = r
	default:
		// Foreign implementers are materialized; they carry no determinant.
		divisor = materialize[T](rhs)
	}
	inv, err := divisor.Inverse()
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	out, err := Mul[T](lhs, inv)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return out, nil
}

// materialize copies any Matrixified into a fresh untransposed Matrix.
func materialize[T Scalar](src Matrixified[T]) *Matrix[T] {
	s := src.Size()
	out := newMatrix[T](s, defaultOptions())
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			out.data[i*s.Width+j] = src.Elem(i, j)
		}
	}

	return out
}

// norm is the shared Euclidean norm over a flat buffer.
func norm[T Scalar](data []T) float64 {
	var sum float64
	for _, v := range data {
		f := float64(v)
		sum += f * f
	}

	return math.Sqrt(sum)
}
