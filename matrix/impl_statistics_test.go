// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/stretchr/testify/require"
)

func TestColumnRMSDiff(t *testing.T) {
	x := matrix.Column(1, 2, 3, 4)
	y := matrix.Column(2, 2, 3, 2)

	got, err := matrix.ColumnRMSDiff(x, y, 0)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(5.0/4), got, 1e-12)

	// only shared rows count
	got, err = matrix.ColumnRMSDiff(x, matrix.Column(1), 0)
	require.NoError(t, err)
	require.Zero(t, got)

	wide := matrix.MustFromRows([][]float64{{0, 3}, {0, 4}})
	got, err = matrix.ColumnRMSDiff(wide, matrix.MustFromRows([][]float64{{9, 0}, {9, 0}}), 1)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(12.5), got, 1e-12)

	_, err = matrix.ColumnRMSDiff(x, y, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ColumnRMSDiff(nil, y, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewZeros(0, 0)
	require.NoError(t, err)
	got, err = matrix.ColumnRMSDiff(empty, empty, 0)
	require.NoError(t, err)
	require.Zero(t, got)
}
