package bimatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercoop/bimatrix"
)

// specimen is the reference sub-game used throughout the engine tests:
// cell sums 12, 9, 4, 11, security levels 4 (row seat) and 6 (column
// seat).
var specimen = bimatrix.Matrix{
	{{A: 4, B: 8}, {A: 3, B: 6}},
	{{A: 1, B: 3}, {A: 5, B: 6}},
}

func TestTranspose_SwapsRoles(t *testing.T) {
	got := specimen.Transpose()

	want := bimatrix.Matrix{
		{{A: 8, B: 4}, {A: 3, B: 1}},
		{{A: 6, B: 3}, {A: 6, B: 5}},
	}
	require.Equal(t, want, got)
}

func TestTranspose_IsInvolution(t *testing.T) {
	require.Equal(t, specimen, specimen.Transpose().Transpose())

	// Holds for an asymmetric matrix with distinct entries too.
	m := bimatrix.Matrix{
		{{A: 1, B: 2}, {A: 3, B: 4}},
		{{A: 5, B: 6}, {A: 7, B: 8}},
	}
	require.Equal(t, m, m.Transpose().Transpose())
}

func TestCellSum(t *testing.T) {
	require.Equal(t, 12.0, specimen.CellSum(0, 0))
	require.Equal(t, 9.0, specimen.CellSum(0, 1))
	require.Equal(t, 4.0, specimen.CellSum(1, 0))
	require.Equal(t, 11.0, specimen.CellSum(1, 1))
}

func TestSecurityLevel_RowSeat(t *testing.T) {
	// Row grid [[4,3],[1,5]]: maximin row 0 (3 ≥ 1); column maxima 4
	// and 5, so column 0 (4 ≤ 5). Selected cell (0,0) = (4,8).
	require.Equal(t, bimatrix.Payoff{A: 4, B: 8}, specimen.SecurityLevel())
}

func TestSecurityLevel_ColumnSeat(t *testing.T) {
	// From the other seat: row grid [[8,3],[6,6]] picks row 1 (6 > 3),
	// column maxima 8 and 6 pick column 1. Selected cell (1,1) = (6,5).
	require.Equal(t, bimatrix.Payoff{A: 6, B: 5}, specimen.Transpose().SecurityLevel())
}

func TestSecurityLevel_TiesPickIndexZero(t *testing.T) {
	uniform := bimatrix.Matrix{
		{{A: 1, B: 1}, {A: 1, B: 2}},
		{{A: 1, B: 3}, {A: 1, B: 4}},
	}
	require.Equal(t, bimatrix.Payoff{A: 1, B: 1}, uniform.SecurityLevel())
}

func TestNewPair_OrdersArguments(t *testing.T) {
	direct, swapped := bimatrix.NewPair("a", "b")
	require.False(t, swapped)
	require.Equal(t, bimatrix.Pair{P: "a", Q: "b"}, direct)

	reversed, swapped := bimatrix.NewPair("b", "a")
	require.True(t, swapped)
	require.Equal(t, direct, reversed)
}

func TestTable_GetReorients(t *testing.T) {
	table := bimatrix.Table{{P: "a", Q: "b"}: specimen}

	fromA, err := table.Get("a", "b")
	require.NoError(t, err)
	require.Equal(t, specimen, fromA)

	fromB, err := table.Get("b", "a")
	require.NoError(t, err)
	require.Equal(t, specimen.Transpose(), fromB)
}

func TestTable_MissingEntry(t *testing.T) {
	table := bimatrix.Table{{P: "a", Q: "b"}: specimen}

	_, err := table.Get("a", "c")
	require.ErrorIs(t, err, bimatrix.ErrMissingPayoff)
	require.Contains(t, err.Error(), `"a,c"`)

	_, _, err = table.Lookup("c", "a")
	require.ErrorIs(t, err, bimatrix.ErrMissingPayoff)
}
