// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Matrix and Vector.
// This file contains ONLY the element constraint (Scalar) and the shape
// descriptor (Pair). Errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the element type accepted by every container in this package.
//
// Contract:
//   - the zero value is the additive identity, T(1) the multiplicative one;
//   - + - * / and unary minus are defined, so unsigned kinds are excluded;
//   - float64(v) widens the value for Norm (precision loss is acceptable there).
type Scalar interface {
	constraints.Signed | constraints.Float
}

// zero returns the additive identity of T.
func zero[T Scalar]() T {
	var z T

	return z
}

// one returns the multiplicative identity of T.
func one[T Scalar]() T { return T(1) }

// powMinus returns (-1)^k in T.
func powMinus[T Scalar](k int) T {
	if k%2 == 0 {
		return one[T]()
	}

	return -one[T]()
}

// Pair is a (width, height) shape descriptor.
// Width counts columns, Height counts rows. Both are fixed after creation;
// only an explicit transpose exchanges them.
type Pair struct {
	Width  int // number of columns
	Height int // number of rows
}

// NewPair builds a Pair from a column and a row count.
// Negative components are a programmer error and panic.
func NewPair(width, height int) Pair {
	if width < 0 || height < 0 {
		panic(panicNegativePair)
	}

	return Pair{Width: width, Height: height}
}

// Square is shorthand for NewPair(n, n).
func Square(n int) Pair { return NewPair(n, n) }

// Contains reports whether (row, col) lies inside the rectangle described by p:
// 0 ≤ row < Height and 0 ≤ col < Width.
// Complexity: O(1).
func (p Pair) Contains(row, col int) bool {
	return row >= 0 && row < p.Height && col >= 0 && col < p.Width
}

// Transposed returns p with Width and Height exchanged.
func (p Pair) Transposed() Pair { return Pair{Width: p.Height, Height: p.Width} }

// transpose swaps the components in place.
func (p *Pair) transpose() { p.Width, p.Height = p.Height, p.Width }

// IsSquare reports Width == Height.
func (p Pair) IsSquare() bool { return p.Width == p.Height }

// IsDegenerate reports whether one of the dimensions equals 1.
func (p Pair) IsDegenerate() bool { return p.Width == 1 || p.Height == 1 }

// IsVertical reports a column shape (n×1 with n != 1).
func (p Pair) IsVertical() bool { return p.Width == 1 && p.Height != 1 }

// Len is the number of cells, Width*Height.
func (p Pair) Len() int { return p.Width * p.Height }

// String renders the pair as "rows×cols", the way shapes read in math.
func (p Pair) String() string { return fmt.Sprintf("%dx%d", p.Height, p.Width) }
