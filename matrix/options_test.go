// SPDX-License-Identifier: MIT
// Package matrix_test verifies functional options: defaults and validation.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecspace/matrix"
	"github.com/stretchr/testify/require"
)

// TestWithEpsilon_Panics ensures nonsensical tolerances are programmer errors.
func TestWithEpsilon_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

// TestDeterminantPolicy_LastOptionWins ensures later setters override earlier ones
// and nil options are ignored.
func TestDeterminantPolicy_LastOptionWins(t *testing.T) {
	m, err := matrix.Identity[float64](matrix.Square(2),
		matrix.WithStaleDeterminant(), nil, matrix.WithTrackedDeterminant())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3))
	_, ok := m.Determinant()
	require.False(t, ok) // tracked wins

	m, err = matrix.Identity[float64](matrix.Square(2),
		matrix.WithTrackedDeterminant(), matrix.WithStaleDeterminant())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3)) // upper-triangular: det stays 1 anyway
	d, ok := m.Determinant()
	require.True(t, ok)
	require.Equal(t, 1.0, d)
}

// TestEpsilonZero makes AllClose exact.
func TestEpsilonZero(t *testing.T) {
	a := MustRows(t, [][]float64{{1}})
	b := MustRows(t, [][]float64{{1 + 1e-15}})
	require.True(t, matrix.AllClose[float64](a, b))
	require.False(t, matrix.AllClose[float64](a, b, matrix.WithEpsilon(0)))
}
