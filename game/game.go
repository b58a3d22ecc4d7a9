package game

import (
	"errors"

	"github.com/katalvlaran/hypercoop/bimatrix"
	"github.com/katalvlaran/hypercoop/hypergraph"
)

// Sentinel errors for engine construction. Computation-time failures
// (absent table entries) surface bimatrix.ErrMissingPayoff instead.
var (
	// ErrNilHyperGraph indicates a nil structure was passed to New.
	ErrNilHyperGraph = errors.New("game: hypergraph is nil")

	// ErrNilTable indicates a nil payoff table was passed to New.
	ErrNilTable = errors.New("game: payoff table is nil")
)

// Strategy maps a node to its binary action. The empty map is the
// trivial strategy over zero nodes.
type Strategy map[string]int

// CoalitionValue is one characteristic-function entry: the optimal
// total payoff a coalition can secure and the joint strategy achieving
// it.
type CoalitionValue struct {
	Worth    float64
	Strategy Strategy
}

// Result bundles the four output mappings of CalculateImputations.
// Worth is keyed by Coalition.Key(); Coalitions preserves the canonical
// enumeration order for deterministic iteration over Worth.
type Result struct {
	// Coalitions lists every non-empty coalition in enumeration order;
	// the last entry is the grand coalition.
	Coalitions []Coalition

	// Worth maps Coalition.Key() to the coalition's value and strategy.
	Worth map[string]CoalitionValue

	// HyperlinkShares maps hyperlink name to its equal-surplus share
	// ksi(h); the shares sum to the grand-coalition worth.
	HyperlinkShares map[string]float64

	// PlayerBaselines maps hyperlink name → player → the player's
	// security-level baseline within that hyperlink.
	PlayerBaselines map[string]map[string]float64

	// PlayerShares maps player to its final imputation share eps; the
	// shares sum to the grand-coalition worth.
	PlayerShares map[string]float64
}

// GrandWorth returns v(grand coalition), the value every allocation
// level sums to.
func (r *Result) GrandWorth() float64 {
	if len(r.Coalitions) == 0 {
		return 0
	}

	return r.Worth[r.Coalitions[len(r.Coalitions)-1].Key()].Worth
}

// Game is the coalition-value engine: a validated HyperGraph plus a
// complete pairwise bimatrix table. Both inputs are treated as
// immutable; a Game is safe for concurrent use.
type Game struct {
	h       *hypergraph.HyperGraph
	table   bimatrix.Table
	workers int
}

// New builds an engine over a constructed HyperGraph and its pairwise
// payoff table. The HyperGraph's own invariants are not re-validated
// here — validity is owned by hypergraph.New. Table completeness is
// checked lazily: the first absent pair aborts computation with
// bimatrix.ErrMissingPayoff.
func New(h *hypergraph.HyperGraph, table bimatrix.Table, opts ...Option) (*Game, error) {
	if h == nil {
		return nil, ErrNilHyperGraph
	}
	if table == nil {
		return nil, ErrNilTable
	}

	g := &Game{h: h, table: table, workers: 1}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// CalculateImputations runs the four passes and returns the complete
// allocation: characteristic function, hyperlink shares, player
// baselines, player shares. Any missing table entry aborts the whole
// call; there is no partial-result mode.
//
// Complexity: O(2^k · 2^m · P) time for k hyperlinks, at most m
// participant nodes and P participant pairs per coalition — the 2^m
// strategy enumeration is the engine's only hot path.
func (g *Game) CalculateImputations() (*Result, error) {
	coalitions := g.Coalitions()

	// Passes 1+2: characteristic function under background constraints.
	worth, err := g.CharacteristicFunction()
	if err != nil {
		return nil, err
	}

	// Pass 3: equal surplus division across hyperlinks.
	shares := g.HyperlinkImputation(worth)

	// Pass 4: security-level baselines, then proportional division.
	baselines, err := g.PlayerBaselines()
	if err != nil {
		return nil, err
	}
	players := g.PlayerImputation(shares, baselines)

	return &Result{
		Coalitions:      coalitions,
		Worth:           worth,
		HyperlinkShares: shares,
		PlayerBaselines: baselines,
		PlayerShares:    players,
	}, nil
}
