// Package bimatrix models the 2×2 bimatrix sub-games played by every
// pair of players that co-occurs inside a hyperlink, and the pair-keyed
// table that collects them.
//
// A Matrix is an immutable 2×2 grid of Payoff pairs: cell (i,j) holds
// the payoffs received by the row player (component A) and the column
// player (component B) when the row player picks action i and the
// column player picks action j. Actions are binary; mixed strategies
// are out of scope by design.
//
// Two operations matter to the coalition engine:
//
//   - Transpose exchanges the two players' roles, so that a matrix
//     stored for the ordered pair (p,q) can be read from q's seat.
//   - SecurityLevel selects one cell by a deterministic maxmin/minmax
//     rule and returns its payoff pair; the A component is a player's
//     individual baseline inside the sub-game.
//
// SecurityLevel is intentionally asymmetric: both the row choice and
// the column choice are driven by the row player's own payoff grid.
// See the method documentation for the exact rule.
//
// A Table maps ordered pairs (P < Q under lexicographic order) to
// matrices. Lookup of an absent pair returns ErrMissingPayoff; there is
// no default payoff.
//
// Complexity: every operation in this package is O(1) — the grids are
// fixed 2×2.
package bimatrix
