package hypergraph

import (
	"fmt"
	"sort"
)

// Link is one named hyperlink in construction order: a name plus its
// member nodes. Members may be listed in any order and may repeat;
// the constructor stores them as a set.
type Link struct {
	Name    string
	Members []string
}

// HyperGraph is the frozen interaction structure: a node set plus an
// insertion-ordered family of named hyperlinks. All fields are private;
// the accessors below return copies, so a constructed HyperGraph is
// immutable from the caller's point of view.
type HyperGraph struct {
	nodes   []string                       // sorted node identifiers
	nodeSet map[string]struct{}            // membership index over nodes
	names   []string                       // hyperlink names, insertion order
	members map[string]map[string]struct{} // name → member set
}

// New validates (nodes, links) against the five structural invariants
// (see the package documentation for the list and order) and returns a
// frozen HyperGraph. The first violated invariant aborts construction
// with its sentinel error, wrapped with the offending node or hyperlink
// name; no partially valid object is ever returned.
//
// Complexity: O(n log n + Σ|link| + k²·s) time for n nodes, k links of
// size ≤ s (the subset check dominates on dense families).
func New(nodes []string, links []Link) (*HyperGraph, error) {
	h := &HyperGraph{
		nodeSet: make(map[string]struct{}, len(nodes)),
		members: make(map[string]map[string]struct{}, len(links)),
	}

	// 0) Ingest the node set (sorted: the canonical node order is
	//    lexicographic) and the hyperlink family in insertion order.
	for _, n := range nodes {
		if _, dup := h.nodeSet[n]; dup {
			continue
		}
		h.nodeSet[n] = struct{}{}
		h.nodes = append(h.nodes, n)
	}
	sort.Strings(h.nodes)

	for _, l := range links {
		if _, dup := h.members[l.Name]; dup {
			return nil, fmt.Errorf("hyperlink %q: %w", l.Name, ErrDuplicateHyperlink)
		}
		set := make(map[string]struct{}, len(l.Members))
		for _, m := range l.Members {
			set[m] = struct{}{}
		}
		h.names = append(h.names, l.Name)
		h.members[l.Name] = set
	}

	// 1) Every referenced node must belong to the node set.
	for _, name := range h.names {
		for m := range h.members[name] {
			if _, ok := h.nodeSet[m]; !ok {
				return nil, fmt.Errorf("hyperlink %q: node %q: %w", name, m, ErrUnknownNode)
			}
		}
	}

	// 2) Every hyperlink needs at least two members.
	for _, name := range h.names {
		if len(h.members[name]) < 2 {
			return nil, fmt.Errorf("hyperlink %q: %w", name, ErrDegenerateHyperlink)
		}
	}

	// 3) No isolated nodes: every declared node appears somewhere.
	for _, n := range h.nodes {
		found := false
		for _, name := range h.names {
			if _, ok := h.members[name][n]; ok {
				found = true

				break
			}
		}
		if !found {
			return nil, fmt.Errorf("node %q: %w", n, ErrIsolatedNode)
		}
	}

	// 4) The family must be reduced: no hyperlink's member set may be a
	//    strict subset of another's. Equal sets pass this check and are
	//    caught by the forest check below (two links over the same pair
	//    of nodes close a 4-cycle in the incidence structure).
	for i, a := range h.names {
		for j, b := range h.names {
			if i == j {
				continue
			}
			if isStrictSubset(h.members[a], h.members[b]) {
				return nil, fmt.Errorf("hyperlink %q ⊂ %q: %w", a, b, ErrRedundantHyperlink)
			}
		}
	}

	// 5) The bipartite incidence structure must be a forest.
	if cyclic := h.incidenceHasCycle(); cyclic {
		return nil, ErrCyclicStructure
	}

	return h, nil
}

// isStrictSubset reports whether a ⊂ b.
func isStrictSubset(a, b map[string]struct{}) bool {
	if len(a) >= len(b) {
		return false
	}
	for m := range a {
		if _, ok := b[m]; !ok {
			return false
		}
	}

	return true
}

// Nodes returns the node set in canonical (lexicographic) order.
// The returned slice is a copy.
func (h *HyperGraph) Nodes() []string {
	out := make([]string, len(h.nodes))
	copy(out, h.nodes)

	return out
}

// Hyperlinks returns the hyperlink names in insertion order — the
// canonical enumeration order for coalitions. The returned slice is a
// copy.
func (h *HyperGraph) Hyperlinks() []string {
	out := make([]string, len(h.names))
	copy(out, h.names)

	return out
}

// Members returns the member nodes of hyperlink name in canonical
// (lexicographic) order, or (nil, false) for an unknown name. The
// returned slice is a copy.
func (h *HyperGraph) Members(name string) ([]string, bool) {
	set, ok := h.members[name]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)

	return out, true
}

// Contains reports whether node n is a member of hyperlink name.
func (h *HyperGraph) Contains(name, n string) bool {
	set, ok := h.members[name]
	if !ok {
		return false
	}
	_, in := set[n]

	return in
}
