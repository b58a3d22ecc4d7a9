// Package hypercoop computes cooperative solution concepts for
// multiplayer games whose interaction structure is a hypergraph —
// players grouped into overlapping hyperlinks, every co-occurring pair
// playing a fixed 2×2 bimatrix sub-game.
//
// 🚀 What is hypercoop?
//
//	An exact, deterministic engine that, for every coalition of
//	hyperlinks, derives a characteristic (worth) value and the optimal
//	constrained joint strategy, then allocates the grand-coalition
//	worth down to individual players:
//		• hypergraph/ — validated, immutable structure (five invariants,
//		  bipartite incidence forest check)
//		• bimatrix/   — 2×2 sub-games: transpose, security levels,
//		  pair-keyed payoff table
//		• game/       — coalition enumeration, exhaustive strategy
//		  optimization, equal-surplus and proportional allocation
//		• gamedef/    — YAML game definitions
//		• render/     — two-column bipartite incidence diagrams
//		• report/     — human-readable result formatting
//
// ✨ Why hypercoop?
//
//   - Exact by construction – every binary strategy assignment is
//     enumerated; no approximation, no pruning, no mixed strategies
//   - Deterministic – canonical enumeration orders and first-seen
//     tie-breaks make results reproducible bit for bit
//   - Validated inputs – construction either yields a fully valid
//     hypergraph or a specific sentinel error, never a partial object
//   - Parallel-ready – coalitions are mutually independent; the engine
//     fans them out across workers without changing the output
//
// Quick ASCII example (a two-hyperlink path):
//
//	a ──┤ h1
//	b ──┤ h1 h2
//	c ──┤ h2
//
// Start with gamedef to describe an instance, game.CalculateImputations
// to solve it, and report to print the four result mappings.
//
//	go get github.com/katalvlaran/hypercoop
package hypercoop
