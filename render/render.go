package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hypercoop/hypergraph"
)

// Bipartite writes a two-column diagram of h's incidence structure to
// w: every node on the left, the hyperlinks it belongs to on the right,
// one row per node. Rows appear in canonical node order and hyperlinks
// in insertion order, so output is stable across runs.
//
//	a ──┤ h1
//	b ──┤ h1 h2
//	c ──┤ h2
//
// Returns the first write error, if any.
func Bipartite(w io.Writer, h *hypergraph.HyperGraph) error {
	nodes := h.Nodes()
	width := 0
	for _, n := range nodes {
		if len(n) > width {
			width = len(n)
		}
	}

	// Group membership edges per node; Incidence order keeps hyperlinks
	// in insertion order within each group.
	byNode := make(map[string][]string, len(nodes))
	for _, e := range h.Incidence() {
		byNode[e.Node] = append(byNode[e.Node], e.Hyperlink)
	}

	for _, n := range nodes {
		line := fmt.Sprintf("%-*s ──┤ %s\n", width, n, strings.Join(byNode[n], " "))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	return nil
}
