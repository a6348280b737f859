package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]float64{{4, 3}, {2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 5}, {5, 5}}, sum.ToRows())

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-3, -1}, {1, 3}}, diff.ToRows())

	// operands untouched
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())
}

func TestSub_DimensionMismatch(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}})
	b := matrix.MustFromRows([][]float64{{1}, {2}})

	_, err := matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.ARows)
	assert.Equal(t, 2, se.ACols)
	assert.Equal(t, 2, se.BRows)
	assert.Equal(t, 1, se.BCols)

	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := matrix.MustFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, c.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_IdentityNeutral(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	I, err := matrix.Identity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(I, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, I)
	require.NoError(t, err)
	require.True(t, matrix.Equal(left, a))
	require.True(t, matrix.Equal(right, a))
}

func TestScale(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, -2}})
	s, err := matrix.Scale(a, -3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-3, 6}}, s.ToRows())
}

func TestIdentity(t *testing.T) {
	I, err := matrix.Identity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I.ToRows())

	_, err = matrix.Identity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestEqual_Tolerance(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}})
	near := matrix.MustFromRows([][]float64{{1 + 5e-6, 2 - 9e-6}})
	far := matrix.MustFromRows([][]float64{{1 + 2e-5, 2}})
	other := matrix.MustFromRows([][]float64{{1}, {2}})
	nan := matrix.MustFromRows([][]float64{{math.NaN(), 2}})

	assert.True(t, matrix.Equal(a, near))
	assert.False(t, matrix.Equal(a, far))
	assert.False(t, matrix.Equal(a, other))
	assert.False(t, matrix.Equal(nan, nan))
	assert.True(t, matrix.EqualTol(a, far, 1e-4))
}

func TestValidators(t *testing.T) {
	sq := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	wide := matrix.MustFromRows([][]float64{{1, 2, 3}})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNotSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameRows(sq, wide), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameRows(sq, matrix.Column(1, 2)))
}

func TestRowHelpers(t *testing.T) {
	m := matrix.MustFromRows([][]float64{{2, 1}, {1e-10, -1e-12}, {0, 3}})

	assert.False(t, m.IsZeroRow(0, 1e-9))
	assert.True(t, m.IsZeroRow(1, 1e-9))
	assert.False(t, m.IsZeroRow(7, 1e-9))
	assert.Equal(t, []float64{2, -1e-12}, m.Diagonal())
	assert.True(t, m.IsFinite())

	require.NoError(t, m.Set(2, 0, math.Inf(1)))
	assert.False(t, m.IsFinite())
}
