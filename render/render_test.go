package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercoop/hypergraph"
	"github.com/katalvlaran/hypercoop/render"
)

func TestBipartite_TwoColumnDiagram(t *testing.T) {
	h, err := hypergraph.New(
		[]string{"a", "b", "charlie"},
		[]hypergraph.Link{
			{Name: "h1", Members: []string{"a", "b"}},
			{Name: "h2", Members: []string{"b", "charlie"}},
		},
	)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, render.Bipartite(&b, h))

	want := "" +
		"a       ──┤ h1\n" +
		"b       ──┤ h1 h2\n" +
		"charlie ──┤ h2\n"
	require.Equal(t, want, b.String())
}

func TestBipartite_Deterministic(t *testing.T) {
	h, err := hypergraph.New(
		[]string{"hub", "x", "y"},
		[]hypergraph.Link{
			{Name: "hx", Members: []string{"hub", "x"}},
			{Name: "hy", Members: []string{"hub", "y"}},
		},
	)
	require.NoError(t, err)

	var first, second strings.Builder
	require.NoError(t, render.Bipartite(&first, h))
	require.NoError(t, render.Bipartite(&second, h))
	require.Equal(t, first.String(), second.String())
	require.Contains(t, first.String(), "hub ──┤ hx hy")
}
