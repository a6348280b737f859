// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/stretchr/testify/require"
)

func zeros(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewZeros(r, c)
	require.NoError(t, err)

	return m
}

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSameRows accepts any column counts.
func TestValidateSameRows(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSameRows(zeros(t, 3, 3), zeros(t, 3, 0)))
	require.ErrorIs(t, matrix.ValidateSameRows(zeros(t, 3, 3), zeros(t, 2, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameRows(nil, zeros(t, 2, 1)), matrix.ErrNilMatrix)

	var se *matrix.ShapeError
	err := matrix.ValidateSameRows(zeros(t, 3, 3), zeros(t, 2, 1))
	require.True(t, errors.As(err, &se))
	require.Equal(t, 3, se.ARows)
	require.Equal(t, 2, se.BRows)
}

// TestValidateSquare distinguishes nil from rectangular inputs.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(zeros(t, 0, 0)))
	require.NoError(t, matrix.ValidateSquare(zeros(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquare(zeros(t, 2, 3)), matrix.ErrNotSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}
