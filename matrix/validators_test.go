// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cowmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.NoError(t, matrix.ValidateNotNil(MustNew(t, 0, 0)))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
}

func TestValidateSameShape(t *testing.T) {
	a := MustNew(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustNew(t, 2, 3)))
	require.NoError(t, matrix.ValidateSameShape(MustNew(t, 0, 0), MustNew(t, 0, 0)))

	err := matrix.ValidateSameShape(a, MustNew(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Rows")

	err = matrix.ValidateSameShape(a, MustNew(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Columns")

	require.ErrorIs(t, matrix.ValidateSameShape(a, MustNew(t, 0, 0)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(nil, a), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustNew(t, 2, 3), MustNew(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustNew(t, 0, 0), MustNew(t, 0, 0)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustNew(t, 0, 0), MustNew(t, 1, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustNew(t, 2, 3), MustNew(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustNew(t, 2, 3), nil), matrix.ErrNilMatrix)
}
