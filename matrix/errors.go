// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (closed, consistent).
// This file defines ONLY package-level sentinel errors and programmer-error
// panic messages. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. Panics are reserved for programmer errors
// (unchecked indexing, malformed Vector shapes, invalid options).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations wrap
// a sentinel exactly once with their operation tag (see matrixErrorf), so the
// surface reads "Inverse: matrix: zero determinant" and errors.Is still matches.

var (
	// ErrNonSquareMatrix is returned when a square matrix is required
	// (Identity, CompDeterm, Inverse, square patterns).
	ErrNonSquareMatrix = errors.New("matrix: matrix is not square")

	// ErrNonThirdMatrix is returned by dimension-3-only operations (Cross).
	ErrNonThirdMatrix = errors.New("matrix: operation requires dimension 3")

	// ErrZeroDeterminant signals a singular matrix: the cached determinant is
	// exactly the additive identity.
	ErrZeroDeterminant = errors.New("matrix: zero determinant")

	// ErrUnknownDeterminant is returned by Inverse when CompDeterm was never
	// called (or the cache was invalidated by a mutation).
	ErrUnknownDeterminant = errors.New("matrix: determinant is not computed")

	// ErrInappropriateSizes indicates incompatible operand shapes: Add/Sub on
	// different sizes, Mul where a.Width != b.Height, ragged input rows.
	ErrInappropriateSizes = errors.New("matrix: inappropriate sizes")

	// ErrInvalidIndex indicates that (row, col) is outside the logical size.
	// The validated indexers (At/Set) MUST return this, not panic.
	ErrInvalidIndex = errors.New("matrix: invalid index")

	// ErrDivByVector is returned when the divisor of Div is a Vector.
	ErrDivByVector = errors.New("matrix: division by vector")

	// ErrNotAVector is returned by AsVector when neither dimension equals 1.
	ErrNotAVector = errors.New("matrix: not a vector")

	// ErrZeroDivision is returned when a scalar divisor is the additive identity.
	ErrZeroDivision = errors.New("matrix: division by zero")
)

// Programmer-error panic messages (no magic strings at call sites).
const (
	panicNegativePair   = "matrix: Pair components must be non-negative"
	panicVectorHeight   = "matrix: Vector must be constructed with height 1"
	panicIndexOutOfRect = "matrix: unchecked index outside logical size"
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicUnknownPattern = "matrix: unknown pattern"
)

// Operation tags for uniform error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opDiv        = "Div"
	opDivScalar  = "DivScalar"
	opIdentity   = "Identity"
	opFromRows   = "FromRows"
	opCompDeterm = "CompDeterm"
	opInverse    = "Inverse"
	opAsVector   = "AsVector"
	opDot        = "Dot"
	opCross      = "Cross"
	opNormalize  = "Normalize"
	opPattern    = "NewPattern"
	opAt         = "At"
	opSet        = "Set"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with the accessor tag and the offending coordinates.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}
