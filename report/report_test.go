package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercoop/bimatrix"
	"github.com/katalvlaran/hypercoop/game"
	"github.com/katalvlaran/hypercoop/hypergraph"
	"github.com/katalvlaran/hypercoop/report"
)

func singleResult(t *testing.T) *game.Result {
	t.Helper()
	h, err := hypergraph.New(
		[]string{"a", "b"},
		[]hypergraph.Link{{Name: "h1", Members: []string{"a", "b"}}},
	)
	require.NoError(t, err)

	g, err := game.New(h, bimatrix.Table{
		{P: "a", Q: "b"}: {
			{{A: 4, B: 8}, {A: 3, B: 6}},
			{{A: 1, B: 3}, {A: 5, B: 6}},
		},
	})
	require.NoError(t, err)

	res, err := g.CalculateImputations()
	require.NoError(t, err)

	return res
}

func TestWrite_FourSections(t *testing.T) {
	var b strings.Builder
	require.NoError(t, report.Write(&b, singleResult(t)))

	want := "characteristic function:\n" +
		"  v(h1) = 12  strategy a=0 b=0\n" +
		"hyperlink imputation:\n" +
		"  ksi(h1) = 12\n" +
		"player baselines:\n" +
		"  v(a in h1) = 4\n" +
		"  v(b in h1) = 6\n" +
		"player imputation:\n" +
		"  eps(a) = 4.8\n" +
		"  eps(b) = 7.2\n"
	require.Equal(t, want, b.String())
}

func TestWrite_Deterministic(t *testing.T) {
	res := singleResult(t)

	var first, second strings.Builder
	require.NoError(t, report.Write(&first, res))
	require.NoError(t, report.Write(&second, res))
	require.Equal(t, first.String(), second.String())
}
