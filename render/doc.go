// Package render draws the bipartite incidence structure of a
// hypergraph as a two-column text diagram: nodes on the left,
// hyperlinks on the right, one line per membership edge. It consumes
// only the read-only accessors the hypergraph exposes (node set,
// hyperlink names, membership edges) and holds no layout state.
package render
