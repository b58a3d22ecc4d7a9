package bimatrix

// Payoff is one cell of a bimatrix: A goes to the row player, B to the
// column player.
type Payoff struct {
	// A is the row player's payoff in this cell.
	A float64

	// B is the column player's payoff in this cell.
	B float64
}

// Sum returns A+B, the cell's contribution to a coalition's total
// payoff when both players land on it.
func (p Payoff) Sum() float64 { return p.A + p.B }

// Matrix is an immutable 2×2 bimatrix: Matrix[i][j] is the payoff pair
// when the row player plays action i and the column player plays j.
// The zero value is a valid all-zero sub-game.
type Matrix [2][2]Payoff

// Transpose returns the same sub-game viewed from the other seat: the
// row player of the result is the column player of m.
//
// Construction rule: swap the two payoff components within every cell,
// then swap the off-diagonal cells (1,0)↔(0,1) so that row and column
// roles are exchanged consistently. Transpose is an involution:
// m.Transpose().Transpose() == m.
//
// Pure; m is not modified. Complexity: O(1).
func (m Matrix) Transpose() Matrix {
	var t Matrix
	// 1) Swap payoff components within every cell.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			t[i][j] = Payoff{A: m[i][j].B, B: m[i][j].A}
		}
	}
	// 2) Swap the off-diagonal cells to finish the role exchange.
	t[0][1], t[1][0] = t[1][0], t[0][1]

	return t
}

// CellSum returns the sum of both payoff components at cell (i,j).
// Callers index with binary actions; out-of-range indices panic as a
// programmer error, exactly like raw array indexing.
func (m Matrix) CellSum(i, j int) float64 { return m[i][j].Sum() }

// SecurityLevel selects one cell by a deterministic maxmin/minmax rule
// and returns its payoff pair. The A component is used as the row
// player's individual baseline value inside this sub-game.
//
// Rule (both selections read the ROW player's payoff grid G, where
// G[i][j] = m[i][j].A — this asymmetry is deliberate and load-bearing
// for the allocation outputs, so it must not be "corrected" to a
// textbook minimax over the opponent's grid):
//
//  1. row = 0 if min(G[0]) ≥ min(G[1]), else 1  (maximin over rows);
//  2. let C be the transpose of G; col = 0 if max(C[0]) ≤ max(C[1]),
//     else 1 (minimax over G's columns);
//  3. return m[row][col].
//
// Ties resolve to index 0 in both selections. Complexity: O(1).
func (m Matrix) SecurityLevel() Payoff {
	// Row player's payoff grid.
	g := [2][2]float64{
		{m[0][0].A, m[0][1].A},
		{m[1][0].A, m[1][1].A},
	}

	// 1) Maximin row selection over g.
	row := 0
	if min2(g[0][0], g[0][1]) < min2(g[1][0], g[1][1]) {
		row = 1
	}

	// 2) Minimax column selection over g's columns (still the row
	//    player's payoffs, not the opponent's).
	col := 0
	if max2(g[0][0], g[1][0]) > max2(g[0][1], g[1][1]) {
		col = 1
	}

	return m[row][col]
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
