// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape validation.
//  - Keep kernels minimal by delegating size/square/index checks here.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//    with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

// ValidateSameSize ensures a and b have equal logical sizes (Add/Sub law).
// Returns ErrInappropriateSizes otherwise.
func ValidateSameSize[T Scalar](a, b Matrixified[T]) error {
	if a.Size() != b.Size() {
		return ErrInappropriateSizes
	}

	return nil
}

// ValidateMulCompatible ensures a.Width == b.Height (Mul law).
// Returns ErrInappropriateSizes otherwise.
func ValidateMulCompatible[T Scalar](a, b Matrixified[T]) error {
	if a.Size().Width != b.Size().Height {
		return ErrInappropriateSizes
	}

	return nil
}

// ValidateSquare ensures p describes a square shape.
// Returns ErrNonSquareMatrix otherwise.
func ValidateSquare(p Pair) error {
	if !p.IsSquare() {
		return ErrNonSquareMatrix
	}

	return nil
}

// ValidateIndex ensures (row, col) lies inside p.
// Returns ErrInvalidIndex otherwise.
func ValidateIndex(p Pair, row, col int) error {
	if !p.Contains(row, col) {
		return ErrInvalidIndex
	}

	return nil
}

// mustContain is the assertion used by the unchecked accessors.
func mustContain(p Pair, row, col int) {
	if !p.Contains(row, col) {
		panic(panicIndexOutOfRect)
	}
}

// mustNonNegative asserts a Pair built as a literal has no negative component.
func mustNonNegative(p Pair) {
	if p.Width < 0 || p.Height < 0 {
		panic(panicNegativePair)
	}
}
