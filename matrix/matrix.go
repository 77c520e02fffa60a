// Package matrix defines the core Matrixified contract for linear algebra operations.
//
// What & Why:
//
//	Matrixified is the capability set shared by the two dense containers,
//	Matrix and Vector. Each implementer supplies only the primitives (sizing,
//	element access, transposition, norm, vector conversion); the
//	dimension-checked arithmetic (Add, Sub, Mul, scalar mutators) is written
//	once against this interface in impl_linear_algebra.go.
//
// Complexity:
//
//	Size(), Transpose(), Elem(), ElemMut(), At() and Set() run in O(1) time.
//	Norm() runs in O(rows*cols); AsVector() copies in O(n) for a Matrix.
package matrix

// Matrixified is a two-dimensional, lazily transposable container of T.
// Implementations: *Matrix[T], *Vector[T].
type Matrixified[T Scalar] interface {
	// Size returns the logical (post-transpose) shape.
	// Complexity: O(1).
	Size() Pair

	// Transpose flips the logical view without touching storage.
	// Complexity: O(1).
	Transpose()

	// Elem reads (row, col) of the logical view.
	// The caller must check Size().Contains(row, col) first; an out-of-range
	// index is a programmer error and panics.
	Elem(row, col int) T

	// ElemMut returns a pointer to (row, col) of the logical view.
	// Same precondition and panic as Elem.
	ElemMut(row, col int) *T

	// At is the validated read: ErrInvalidIndex instead of a panic.
	At(row, col int) (T, error)

	// Set is the validated write: ErrInvalidIndex instead of a panic.
	Set(row, col int, v T) error

	// Norm returns the Euclidean norm over all elements (transpose-invariant).
	// Complexity: O(rows*cols).
	Norm() float64

	// AsVector converts a degenerate (1×n or n×1) container into a row Vector.
	// Returns ErrNotAVector otherwise.
	AsVector() (*Vector[T], error)
}
