// SPDX-License-Identifier: MIT
// Package matrix_test verifies the canonical validators return plain sentinels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vecspace/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	a := matrix.Zeros[float64](matrix.NewPair(3, 2))
	b := matrix.Zeros[float64](matrix.NewPair(2, 3))

	require.Equal(t, matrix.ErrInappropriateSizes, matrix.ValidateSameSize[float64](a, b))
	require.NoError(t, matrix.ValidateSameSize[float64](a, a))

	require.NoError(t, matrix.ValidateMulCompatible[float64](a, b))
	require.Equal(t, matrix.ErrInappropriateSizes, matrix.ValidateMulCompatible[float64](a, a))

	require.NoError(t, matrix.ValidateSquare(matrix.Square(4)))
	require.Equal(t, matrix.ErrNonSquareMatrix, matrix.ValidateSquare(a.Size()))

	require.NoError(t, matrix.ValidateIndex(a.Size(), 1, 2))
	require.Equal(t, matrix.ErrInvalidIndex, matrix.ValidateIndex(a.Size(), 2, 1))
}
