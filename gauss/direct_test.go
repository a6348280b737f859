package gauss_test

import (
	"testing"

	"github.com/katalvlaran/gaussjordan/gauss"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectMotion_TriangularIsFixedPoint(t *testing.T) {
	src := [][]float64{{2, 1, -1}, {0, 3, 4}, {0, 0, 5}}
	a := matrix.MustFromRows(src)
	b := matrix.Column(1, 2, 3)

	swaps, err := gauss.DirectMotion(a, b, gauss.Naive{})
	require.NoError(t, err)
	assert.Zero(t, swaps)
	assert.Equal(t, src, a.ToRows())
	assert.Equal(t, [][]float64{{1}, {2}, {3}}, b.ToRows())
}

func TestDirectMotion_SwapsInLockstep(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{0, 1}, {1, 0}})
	b := matrix.Column(5, 7)

	swaps, err := gauss.DirectMotion(a, b, gauss.Naive{})
	require.NoError(t, err)
	assert.Equal(t, 1, swaps)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, a.ToRows())
	assert.Equal(t, [][]float64{{7}, {5}}, b.ToRows())
}

func TestDirectMotion_SkipsEmptyColumns(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{0, 1, 2}, {0, 2, 5}})
	swaps, err := gauss.DirectMotion(a, nil, gauss.Naive{})
	require.NoError(t, err)
	assert.Zero(t, swaps)
	assert.Equal(t, [][]float64{{0, 1, 2}, {0, 0, 1}}, a.ToRows())

	a = matrix.MustFromRows([][]float64{{0, 1, 2}, {0, 2, 5}})
	swaps, err = gauss.DirectMotion(a, nil, gauss.MaxElement{})
	require.NoError(t, err)
	assert.Equal(t, 1, swaps)
	assert.Equal(t, [][]float64{{0, 2, 5}, {0, 0, -0.5}}, a.ToRows())
}

func TestDirectMotion_ZeroMatrixUntouched(t *testing.T) {
	a, err := matrix.NewZeros(3, 3)
	require.NoError(t, err)

	swaps, err := gauss.DirectMotion(a, nil, gauss.MaxElement{})
	require.NoError(t, err)
	assert.Zero(t, swaps)
	assert.True(t, a.IsZeroRow(0, 0))
}

func TestDirectMotion_Errors(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})

	_, err := gauss.DirectMotion(a, matrix.Column(1, 2, 3), gauss.Naive{})
	require.ErrorIs(t, err, gauss.ErrDimensionMismatch)

	_, err = gauss.DirectMotion(nil, nil, gauss.Naive{})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestGetDirectMotion_LeavesInputs(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.Column(1, 1)

	ra, rb, swaps, err := gauss.GetDirectMotion(a, b, gauss.MaxElement{})
	require.NoError(t, err)
	assert.Equal(t, 1, swaps)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())
	assert.Equal(t, [][]float64{{1}, {1}}, b.ToRows())
	assert.True(t, gauss.IsEchelon(ra))
	assert.Equal(t, 2, rb.Rows())

	_, rb, _, err = gauss.GetDirectMotion(a, nil, gauss.Naive{})
	require.NoError(t, err)
	r, c := rb.Shape()
	assert.Equal(t, 2, r)
	assert.Zero(t, c)
}
