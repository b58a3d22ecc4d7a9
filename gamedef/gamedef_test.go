package gamedef_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercoop/bimatrix"
	"github.com/katalvlaran/hypercoop/game"
	"github.com/katalvlaran/hypercoop/gamedef"
	"github.com/katalvlaran/hypercoop/hypergraph"
)

const pathDefinition = `
nodes: [a, b, c]
hyperlinks:
  - name: h1
    members: [a, b]
  - name: h2
    members: [b, c]
payoffs:
  "a,b":
    - [[4, 8], [3, 6]]
    - [[1, 3], [5, 6]]
  "b,c":
    - [[1, 1], [0, 4]]
    - [[5, 2], [2, 2]]
`

func TestParse_AndBuild(t *testing.T) {
	def, err := gamedef.Parse([]byte(pathDefinition))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, def.Nodes)
	require.Len(t, def.Hyperlinks, 2)
	require.Equal(t, "h1", def.Hyperlinks[0].Name, "hyperlink order is preserved")

	h, table, err := def.Build()
	require.NoError(t, err)
	require.Equal(t, []string{"h1", "h2"}, h.Hyperlinks())

	m, err := table.Get("a", "b")
	require.NoError(t, err)
	require.Equal(t, bimatrix.Payoff{A: 4, B: 8}, m[0][0])
}

func TestLoad_ReaderRoundTrip(t *testing.T) {
	def, err := gamedef.Load(strings.NewReader(pathDefinition))
	require.NoError(t, err)

	h, table, err := def.Build()
	require.NoError(t, err)

	// A built definition feeds the engine unchanged.
	g, err := game.New(h, table)
	require.NoError(t, err)
	res, err := g.CalculateImputations()
	require.NoError(t, err)
	require.InDelta(t, 18.0, res.GrandWorth(), 1e-9)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := gamedef.Parse([]byte("nodes: ["))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode definition")
}

func TestBuild_InvalidHypergraphPropagates(t *testing.T) {
	def, err := gamedef.Parse([]byte(`
nodes: [a, b]
hyperlinks:
  - name: h1
    members: [a, ghost]
payoffs: {}
`))
	require.NoError(t, err)

	_, _, err = def.Build()
	require.ErrorIs(t, err, hypergraph.ErrUnknownNode)
}

func TestBuild_RejectsNonCanonicalPairKey(t *testing.T) {
	def, err := gamedef.Parse([]byte(`
nodes: [a, b]
hyperlinks:
  - name: h1
    members: [a, b]
payoffs:
  "b,a":
    - [[1, 1], [1, 1]]
    - [[1, 1], [1, 1]]
`))
	require.NoError(t, err)

	_, _, err = def.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "canonical order")
}

func TestBuild_RejectsBadGridShape(t *testing.T) {
	def, err := gamedef.Parse([]byte(`
nodes: [a, b]
hyperlinks:
  - name: h1
    members: [a, b]
payoffs:
  "a,b":
    - [[1, 1], [1, 1]]
`))
	require.NoError(t, err)

	_, _, err = def.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "want 2 rows")
}

func TestBuild_RejectsBadCell(t *testing.T) {
	def, err := gamedef.Parse([]byte(`
nodes: [a, b]
hyperlinks:
  - name: h1
    members: [a, b]
payoffs:
  "a,b":
    - [[1, 1, 1], [1, 1]]
    - [[1, 1], [1, 1]]
`))
	require.NoError(t, err)

	_, _, err = def.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "want [A, B]")
}

func TestBuild_RejectsBadKeySpelling(t *testing.T) {
	def, err := gamedef.Parse([]byte(`
nodes: [a, b]
hyperlinks:
  - name: h1
    members: [a, b]
payoffs:
  "ab":
    - [[1, 1], [1, 1]]
    - [[1, 1], [1, 1]]
`))
	require.NoError(t, err)

	_, _, err = def.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), `want "p,q"`)
}
