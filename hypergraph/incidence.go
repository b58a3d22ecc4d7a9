package hypergraph

// MembershipEdge is one edge of the bipartite incidence structure: a
// node on one side, a hyperlink name on the other. The edge list is the
// only structural data an external bipartite-diagram renderer needs
// beyond Nodes and Hyperlinks.
type MembershipEdge struct {
	Node      string
	Hyperlink string
}

// Incidence returns every node-in-hyperlink membership as an edge list,
// in deterministic order: hyperlinks in insertion order, members of
// each hyperlink in lexicographic order.
//
// Complexity: O(Σ|link| · log s) for links of size ≤ s.
func (h *HyperGraph) Incidence() []MembershipEdge {
	var out []MembershipEdge
	for _, name := range h.names {
		ms, _ := h.Members(name)
		for _, m := range ms {
			out = append(out, MembershipEdge{Node: m, Hyperlink: name})
		}
	}

	return out
}

// incidenceHasCycle runs an undirected DFS over the bipartite incidence
// structure (node vertices on one side, hyperlink vertices on the
// other) and reports whether any cycle exists, i.e. whether the
// structure fails to be a forest.
//
// The two partitions cannot collide even when a node and a hyperlink
// share a spelling, so vertices are tagged with a partition prefix.
// A back edge to any visited vertex other than the DFS parent closes a
// cycle; self-loops and parallel edges cannot occur here (membership is
// a set), so the parent-skip is exact.
//
// Complexity: O(V + E) time and space over the bipartite structure.
func (h *HyperGraph) incidenceHasCycle() bool {
	const (
		nodeTag = "n:"
		linkTag = "h:"
	)

	// 1) Build the bipartite adjacency in deterministic order.
	adj := make(map[string][]string, len(h.nodes)+len(h.names))
	for _, name := range h.names {
		lv := linkTag + name
		ms, _ := h.Members(name)
		for _, m := range ms {
			nv := nodeTag + m
			adj[lv] = append(adj[lv], nv)
			adj[nv] = append(adj[nv], lv)
		}
	}

	// 2) DFS from every unvisited node vertex; every hyperlink vertex is
	//    adjacent to some node vertex (cardinality ≥ 2), so node roots
	//    cover the whole structure.
	visited := make(map[string]bool, len(adj))
	type frame struct {
		vertex string
		parent string
	}
	for _, n := range h.nodes {
		root := nodeTag + n
		if visited[root] {
			continue
		}
		stack := []frame{{vertex: root, parent: ""}}
		visited[root] = true
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range adj[top.vertex] {
				if next == top.parent {
					continue
				}
				if visited[next] {
					return true // back edge: the structure is not a forest
				}
				visited[next] = true
				stack = append(stack, frame{vertex: next, parent: top.vertex})
			}
		}
	}

	return false
}
