// SPDX-License-Identifier: MIT
// Package matrix_test verifies the Pair shape descriptor.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vecspace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPair_Contains checks the in-rect rule 0 ≤ row < Height, 0 ≤ col < Width.
func TestPair_Contains(t *testing.T) {
	p := matrix.NewPair(3, 2) // 2 rows × 3 cols

	assert.True(t, p.Contains(0, 0))
	assert.True(t, p.Contains(1, 2))
	assert.False(t, p.Contains(2, 0)) // row == Height
	assert.False(t, p.Contains(0, 3)) // col == Width
	assert.False(t, p.Contains(-1, 0))
	assert.False(t, p.Contains(0, -1))
}

// TestPair_TransposeAndPredicates checks the swap and the shape predicates.
func TestPair_TransposeAndPredicates(t *testing.T) {
	p := matrix.NewPair(4, 1)
	require.Equal(t, matrix.NewPair(1, 4), p.Transposed())
	require.Equal(t, p, p.Transposed().Transposed())

	assert.True(t, p.IsDegenerate())
	assert.False(t, p.IsVertical())
	assert.True(t, p.Transposed().IsVertical())
	assert.False(t, p.IsSquare())
	assert.True(t, matrix.Square(3).IsSquare())
	assert.False(t, matrix.Square(3).IsDegenerate())
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, "1x4", p.String())
}

// TestPair_NegativePanics documents that negative components are programmer errors.
func TestPair_NegativePanics(t *testing.T) {
	require.Panics(t, func() { matrix.NewPair(-1, 2) })
	require.Panics(t, func() { matrix.Zeros[float64](matrix.Pair{Width: 2, Height: -2}) })
}
