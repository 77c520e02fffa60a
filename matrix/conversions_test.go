// Package matrix_test contains unit tests for the gonum converters.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vecspace/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestToGonumRespectsTranspose ensures the logical view is exported.
func TestToGonumRespectsTranspose(t *testing.T) {
	m := MustIntRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	m.Transpose()

	g, err := matrix.ToGonum[int](m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.True(t, mat.Equal(g, mat.NewDense(3, 2, []float64{1, 4, 2, 5, 3, 6})))

	_, err = matrix.ToGonum[int](matrix.Zeros[int](matrix.Square(0)))
	require.ErrorIs(t, err, matrix.ErrInappropriateSizes)
}

// TestFromGonum imports a gonum matrix (including its transpose view).
func TestFromGonum(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m := matrix.FromGonum[float64](g.T())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m.Rows())
	require.False(t, m.IsTransposed())

	v, err := matrix.FromGonum[float64](mat.NewVecDense(3, []float64{7, 8, 9})).AsVector()
	require.NoError(t, err)
	require.Equal(t, []float64{7, 8, 9}, v.Values())

	vec := matrix.NewVector(1.0, 2.0)
	gv, err := matrix.ToGonum[float64](vec)
	require.NoError(t, err)
	require.Equal(t, 2.0, gv.At(0, 1))
}
