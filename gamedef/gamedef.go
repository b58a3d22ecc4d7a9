package gamedef

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypercoop/bimatrix"
	"github.com/katalvlaran/hypercoop/hypergraph"
)

// LinkDef is one hyperlink entry of a definition file.
type LinkDef struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// Definition is the decoded YAML document. Hyperlinks are an ordered
// list because their order is the canonical coalition-enumeration
// order. Payoffs maps "p,q" keys to 2×2 grids of [A, B] cells.
type Definition struct {
	Nodes      []string                 `yaml:"nodes"`
	Hyperlinks []LinkDef                `yaml:"hyperlinks"`
	Payoffs    map[string][][][]float64 `yaml:"payoffs"`
}

// Parse decodes a YAML definition document.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "gamedef: decode definition")
	}

	return &d, nil
}

// Load reads and decodes a YAML definition from r.
func Load(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "gamedef: read definition")
	}

	return Parse(data)
}

// Build validates the definition and assembles the engine inputs: the
// hypergraph (running the full structural validation of
// hypergraph.New) and the pairwise bimatrix table. Malformed payoff
// entries — non-canonical keys, wrong grid shape — are rejected here so
// that the engine never sees a half-formed table.
func (d *Definition) Build() (*hypergraph.HyperGraph, bimatrix.Table, error) {
	links := make([]hypergraph.Link, 0, len(d.Hyperlinks))
	for _, l := range d.Hyperlinks {
		links = append(links, hypergraph.Link{Name: l.Name, Members: l.Members})
	}
	h, err := hypergraph.New(d.Nodes, links)
	if err != nil {
		return nil, nil, errors.Wrap(err, "gamedef: build hypergraph")
	}

	table := make(bimatrix.Table, len(d.Payoffs))
	for key, grid := range d.Payoffs {
		pair, err := parsePairKey(key)
		if err != nil {
			return nil, nil, err
		}
		m, err := parseGrid(key, grid)
		if err != nil {
			return nil, nil, err
		}
		table[pair] = m
	}

	return h, table, nil
}

// parsePairKey splits a "p,q" key and enforces the canonical p < q
// order: a reversed key would silently shadow the intended entry and
// surface later as a missing payoff, so it is rejected up front.
func parsePairKey(key string) (bimatrix.Pair, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return bimatrix.Pair{}, errors.Errorf("gamedef: payoff key %q: want \"p,q\"", key)
	}
	if parts[0] >= parts[1] {
		return bimatrix.Pair{}, errors.Errorf("gamedef: payoff key %q: players must be in canonical order (p < q)", key)
	}

	return bimatrix.Pair{P: parts[0], Q: parts[1]}, nil
}

// parseGrid checks the 2×2×2 shape and assembles the matrix.
func parseGrid(key string, grid [][][]float64) (bimatrix.Matrix, error) {
	var m bimatrix.Matrix
	if len(grid) != 2 {
		return m, errors.Errorf("gamedef: payoff %q: want 2 rows, got %d", key, len(grid))
	}
	for i, row := range grid {
		if len(row) != 2 {
			return m, errors.Errorf("gamedef: payoff %q row %d: want 2 cells, got %d", key, i, len(row))
		}
		for j, cell := range row {
			if len(cell) != 2 {
				return m, errors.Errorf("gamedef: payoff %q cell (%d,%d): want [A, B], got %d values", key, i, j, len(cell))
			}
			m[i][j] = bimatrix.Payoff{A: cell[0], B: cell[1]}
		}
	}

	return m, nil
}
