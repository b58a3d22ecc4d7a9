package game

import (
	"math"
	"sort"

	"github.com/katalvlaran/hypercoop/bimatrix"
)

// participants is the interaction footprint of a set of hyperlinks:
// every pair of nodes that co-occurs inside one of them, plus the
// distinct nodes among those pairs. Both slices are in canonical order
// (pairs by (P,Q), nodes lexicographic), so strategy enumeration over
// them is deterministic.
type participants struct {
	pairs []bimatrix.Pair
	nodes []string
}

// collectParticipants gathers the pairwise footprint of the given
// hyperlinks. Pairs are deduplicated across hyperlinks: two hyperlinks
// can never share a pair in a valid (forest) structure, but the
// collection stays a set regardless.
//
// Complexity: O(Σ s² log s) for hyperlinks of size ≤ s.
func (g *Game) collectParticipants(names []string) participants {
	pairSet := make(map[bimatrix.Pair]struct{})
	nodeSet := make(map[string]struct{})
	for _, name := range names {
		ms, _ := g.h.Members(name)
		for i := 0; i < len(ms); i++ {
			for j := i + 1; j < len(ms); j++ {
				key, _ := bimatrix.NewPair(ms[i], ms[j])
				pairSet[key] = struct{}{}
				nodeSet[key.P] = struct{}{}
				nodeSet[key.Q] = struct{}{}
			}
		}
	}

	p := participants{
		pairs: make([]bimatrix.Pair, 0, len(pairSet)),
		nodes: make([]string, 0, len(nodeSet)),
	}
	for key := range pairSet {
		p.pairs = append(p.pairs, key)
	}
	sort.Slice(p.pairs, func(i, j int) bool {
		if p.pairs[i].P != p.pairs[j].P {
			return p.pairs[i].P < p.pairs[j].P
		}

		return p.pairs[i].Q < p.pairs[j].Q
	})
	for n := range nodeSet {
		p.nodes = append(p.nodes, n)
	}
	sort.Strings(p.nodes)

	return p
}

// resolvedPair is one participant pair with its table entry and node
// positions pre-resolved, so the enumeration loop touches no maps.
type resolvedPair struct {
	pi, qi int
	m      bimatrix.Matrix
}

// resolvePairs looks every participant pair up in the table once. The
// first absent entry aborts with bimatrix.ErrMissingPayoff.
func (g *Game) resolvePairs(p participants, index map[string]int) ([]resolvedPair, error) {
	out := make([]resolvedPair, 0, len(p.pairs))
	for _, key := range p.pairs {
		_, m, err := g.table.Lookup(key.P, key.Q)
		if err != nil {
			return nil, err
		}
		out = append(out, resolvedPair{pi: index[key.P], qi: index[key.Q], m: m})
	}

	return out, nil
}

// maximize enumerates every binary strategy over p.nodes and returns
// the maximal total payoff with the strategy achieving it. A non-nil
// constraint discards strategies that disagree with it on any
// constrained node. Enumeration walks action tuples in lexicographic
// order (node 0 owns the most significant bit) and keeps the first-seen
// maximum via a strict comparison, so among ties the smallest tuple
// wins.
//
// Zero participant nodes yield the trivial empty strategy with payoff
// 0. A constraint can never eliminate every strategy: it only pins the
// constrained bits.
//
// Complexity: O(2^m · P) time for m nodes and P pairs, O(m) space.
func (g *Game) maximize(p participants, constraint Strategy) (float64, Strategy, error) {
	m := len(p.nodes)
	if m == 0 {
		return 0, Strategy{}, nil
	}

	index := make(map[string]int, m)
	for i, n := range p.nodes {
		index[n] = i
	}

	// Resolve every pair's table entry up front: the 2^m loop below is
	// the engine's hot path and must not touch maps.
	pairs, err := g.resolvePairs(p, index)
	if err != nil {
		return 0, nil, err
	}

	// Pre-resolve constrained positions once per enumeration.
	type pin struct {
		pos    int
		action int
	}
	var pins []pin
	for n, a := range constraint {
		if pos, ok := index[n]; ok {
			pins = append(pins, pin{pos: pos, action: a})
		}
	}

	best := math.Inf(-1)
	var bestActions []int
	actions := make([]int, m)
	for mask := 0; mask < 1<<m; mask++ {
		// Decode the action tuple: node 0 takes the most significant
		// bit, so increasing mask walks tuples lexicographically.
		for i := 0; i < m; i++ {
			actions[i] = (mask >> (m - 1 - i)) & 1
		}

		// Honor the background constraint on shared nodes.
		ok := true
		for _, pn := range pins {
			if actions[pn.pos] != pn.action {
				ok = false

				break
			}
		}
		if !ok {
			continue
		}

		total := 0.0
		for _, rp := range pairs {
			total += rp.m.CellSum(actions[rp.pi], actions[rp.qi])
		}
		if total > best {
			best = total
			bestActions = append(bestActions[:0], actions...)
		}
	}

	strategy := make(Strategy, m)
	for i, n := range p.nodes {
		strategy[n] = bestActions[i]
	}

	return best, strategy, nil
}
