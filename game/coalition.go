package game

import "strings"

// Coalition is a non-empty subset of hyperlink names in canonical
// order: the order the names appear in the hypergraph's insertion
// sequence.
type Coalition []string

// Key renders the coalition as a stable map key, joining its names with
// "+". Names keep their canonical order, so equal coalitions always
// produce equal keys.
func (c Coalition) Key() string { return strings.Join(c, "+") }

// contains reports whether name belongs to c.
func (c Coalition) contains(name string) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}

	return false
}

// Coalitions enumerates every non-empty subset of the hyperlink names:
// exactly 2^k − 1 coalitions for k hyperlinks, ordered by increasing
// size and, within a size, by the combination order over the insertion
// sequence. This order is the canonical one — downstream tie-breaking
// depends on it, so it must not be derived from map iteration.
//
// Complexity: O(2^k · k) time and space.
func (g *Game) Coalitions() []Coalition {
	names := g.h.Hyperlinks()
	k := len(names)
	out := make([]Coalition, 0, (1<<k)-1)

	// Fixed-size combinations in index order, sizes 1..k.
	var combine func(start int, cur Coalition, size int)
	combine = func(start int, cur Coalition, size int) {
		if len(cur) == size {
			picked := make(Coalition, size)
			copy(picked, cur)
			out = append(out, picked)

			return
		}
		for i := start; i <= k-(size-len(cur)); i++ {
			combine(i+1, append(cur, names[i]), size)
		}
	}
	for size := 1; size <= k; size++ {
		combine(0, make(Coalition, 0, size), size)
	}

	return out
}

// Complement returns the hyperlink names outside c, in canonical order.
// For every coalition, Complement(c) ∩ c = ∅ and their union is the
// full hyperlink-name set.
func (g *Game) Complement(c Coalition) Coalition {
	var out Coalition
	for _, name := range g.h.Hyperlinks() {
		if !c.contains(name) {
			out = append(out, name)
		}
	}

	return out
}
