package game

// HyperlinkImputation distributes the grand-coalition worth across
// hyperlinks by equal surplus division: every hyperlink keeps its
// singleton worth v({h}) and the surplus V − Σ v({·}) is split equally.
// The shares always sum to V.
//
// worth must be a complete characteristic function as returned by
// CharacteristicFunction; singleton and grand-coalition entries are
// read from it.
func (g *Game) HyperlinkImputation(worth map[string]CoalitionValue) map[string]float64 {
	names := g.h.Hyperlinks()
	k := len(names)
	if k == 0 {
		return map[string]float64{}
	}

	grand := Coalition(names).Key()
	v := worth[grand].Worth

	sumSingles := 0.0
	for _, name := range names {
		sumSingles += worth[Coalition{name}.Key()].Worth
	}
	surplus := (v - sumSingles) / float64(k)

	out := make(map[string]float64, k)
	for _, name := range names {
		out[name] = worth[Coalition{name}.Key()].Worth + surplus
	}

	return out
}

// PlayerBaselines computes each player's individual value inside every
// hyperlink it belongs to: the sum, over the player's co-members in
// that hyperlink, of the security level of their pairwise sub-game seen
// from the player's seat (the stored matrix is transposed when the
// player is the second element of the canonical pair key).
//
// The result maps hyperlink name → player → baseline. A missing table
// entry aborts with bimatrix.ErrMissingPayoff.
func (g *Game) PlayerBaselines() (map[string]map[string]float64, error) {
	out := make(map[string]map[string]float64)
	for _, name := range g.h.Hyperlinks() {
		ms, _ := g.h.Members(name)
		byPlayer := make(map[string]float64, len(ms))
		for _, p := range ms {
			total := 0.0
			for _, q := range ms {
				if q == p {
					continue
				}
				m, err := g.table.Get(p, q) // reoriented: p is the row player
				if err != nil {
					return nil, err
				}
				total += m.SecurityLevel().A
			}
			byPlayer[p] = total
		}
		out[name] = byPlayer
	}

	return out, nil
}

// PlayerImputation distributes each hyperlink's share proportionally to
// its members' baselines, accumulating across every hyperlink a player
// belongs to: eps(p) += baseline(p,h)/Σ baseline(·,h) · ksi(h). When a
// hyperlink's baselines sum to zero the proportion is undefined; its
// share is then split equally among members, preserving the
// per-hyperlink sum invariant.
//
// For every hyperlink the members' contributions sum to ksi(h), so
// globally Σ eps = v(grand coalition).
func (g *Game) PlayerImputation(shares map[string]float64, baselines map[string]map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(g.h.Nodes()))
	for _, name := range g.h.Hyperlinks() {
		ms, _ := g.h.Members(name)
		denom := 0.0
		for _, p := range ms {
			denom += baselines[name][p]
		}
		for _, p := range ms {
			if denom == 0 {
				out[p] += shares[name] / float64(len(ms))

				continue
			}
			out[p] += baselines[name][p] / denom * shares[name]
		}
	}

	return out
}
