// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecspace/matrix"
)

// hide WRAPS a Matrixified to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrixified to forward all methods.
//   - Stage 2: Use hide{X} in tests to force the interface (fallback) paths.
type hide struct{ matrix.Matrixified[float64] }

// MustRows BUILDS a float64 Matrix from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustIntRows BUILDS an int Matrix from literal rows or fails the test.
func MustIntRows(t testing.TB, rows [][]int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustIdentity RETURNS the n×n float64 identity or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.Identity[float64](matrix.Square(n))
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// MustDeterm COMPUTES the determinant of m and returns it, or fails the test.
func MustDeterm[T matrix.Scalar](t testing.TB, m *matrix.Matrix[T]) T {
	t.Helper()
	if err := m.CompDeterm(); err != nil {
		t.Fatalf("CompDeterm: %v", err)
	}
	d, ok := m.Determinant()
	if !ok {
		t.Fatalf("CompDeterm succeeded but the cache is empty")
	}

	return d
}

// RandomSquare FILLS a new n×n float64 Matrix with deterministic U(-1,1)
// values by seed, adding n on the diagonal to keep it well conditioned.
func RandomSquare(t testing.TB, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.Zeros[float64](matrix.Square(n))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			if err := m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}
