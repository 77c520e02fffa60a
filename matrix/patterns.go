// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build common structural matrices (diagonals, crosses, rhombs, ones) in
//     one call for transform and mask construction.

package matrix

import "fmt"

// Pattern names a structural matrix layout for NewPattern.
type Pattern int

const (
	// PatternIdentity: ones on the main diagonal.
	PatternIdentity Pattern = iota
	// PatternNegIdentity: minus ones on the main diagonal.
	PatternNegIdentity
	// PatternRevIdentity: ones on the anti-diagonal.
	PatternRevIdentity
	// PatternNegRevIdentity: minus ones on the anti-diagonal.
	PatternNegRevIdentity
	// PatternCross: ones on both diagonals.
	PatternCross
	// PatternNegCross: minus ones on both diagonals.
	PatternNegCross
	// PatternRhomb: ones on the rhombus |2r-(n-1)| + |2c-(n-1)| == 2⌊n/2⌋.
	PatternRhomb
	// PatternNegRhomb: minus ones on the rhombus.
	PatternNegRhomb
	// PatternOnes: every element one; any shape.
	PatternOnes
)

var patternNames = [...]string{
	"Identity", "NegIdentity", "RevIdentity", "NegRevIdentity",
	"Cross", "NegCross", "Rhomb", "NegRhomb", "Ones",
}

// String returns the pattern name.
func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}

	return patternNames[p]
}

// negated reports whether p is one of the Neg* variants.
func (p Pattern) negated() bool {
	switch p {
	case PatternNegIdentity, PatternNegRevIdentity, PatternNegCross, PatternNegRhomb:
		return true
	}

	return false
}

// hit reports whether cell (r, c) of an n×n matrix belongs to p.
func (p Pattern) hit(n, r, c int) bool {
	switch p {
	case PatternIdentity, PatternNegIdentity:
		return r == c
	case PatternRevIdentity, PatternNegRevIdentity:
		return r+c == n-1
	case PatternCross, PatternNegCross:
		return r == c || r+c == n-1
	case PatternRhomb, PatternNegRhomb:
		return abs(2*r-(n-1))+abs(2*c-(n-1)) == 2*(n/2)
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// NewPattern builds the structural matrix p of the given size.
// MAIN DESCRIPTION:
//   - PatternOnes accepts any shape; every other pattern requires a square size.
//   - Identity patterns pre-populate the determinant cache (1 and (-1)^n).
//
// Errors:
//   - ErrNonSquareMatrix for a non-square size (except PatternOnes).
//
// Panics:
//   - On a Pattern value outside the declared set (programmer error).
func NewPattern[T Scalar](p Pattern, size Pair, opts ...Option) (*Matrix[T], error) {
	if p < PatternIdentity || p > PatternOnes {
		panic(panicUnknownPattern)
	}
	if p == PatternOnes {
		return FillWith[T](size, one[T](), opts...), nil
	}
	if err := ValidateSquare(size); err != nil {
		return nil, matrixErrorf(opPattern, fmt.Errorf("%s: %w", p, err))
	}

	m := newMatrix[T](size, gatherOptions(opts...))
	val := one[T]()
	if p.negated() {
		val = -val
	}
	n := size.Width
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if p.hit(n, r, c) {
				m.data[r*n+c] = val
			}
		}
	}
	switch p {
	case PatternIdentity:
		m.setDeterm(one[T]())
	case PatternNegIdentity:
		m.setDeterm(powMinus[T](n))
	}

	return m, nil
}
