package bimatrix

import (
	"errors"
	"fmt"
)

// ErrMissingPayoff indicates that a required pairwise sub-game is
// absent from the Table. There is no default payoff: the coalition
// engine aborts on the first missing entry.
var ErrMissingPayoff = errors.New("bimatrix: missing payoff entry")

// Pair is an ordered pair of player identifiers with P < Q under
// lexicographic order. It is the canonical Table key: the matrix stored
// for a Pair is oriented with P as the row player.
type Pair struct {
	P string
	Q string
}

// NewPair builds the canonical key for two players, sorting its
// arguments so that callers need not remember the orientation. The
// second return is true when the arguments were swapped, i.e. b < a and
// b becomes the row player.
func NewPair(a, b string) (Pair, bool) {
	if b < a {
		return Pair{P: b, Q: a}, true
	}

	return Pair{P: a, Q: b}, false
}

// String renders the key as "p,q" (the gamedef file format uses the
// same spelling).
func (p Pair) String() string { return p.P + "," + p.Q }

// Table maps ordered player pairs to their 2×2 sub-games. The table is
// treated as an immutable input by the coalition engine; a copy given
// to the engine must stay untouched for results to be reproducible.
type Table map[Pair]Matrix

// Get returns the matrix stored for players a and b, oriented so that a
// is the row player: when the canonical key lists b first, the stored
// matrix is transposed before being returned.
//
// Returns ErrMissingPayoff (wrapped with the canonical key) when the
// pair is absent. Complexity: O(1).
func (t Table) Get(a, b string) (Matrix, error) {
	key, swapped := NewPair(a, b)
	m, ok := t[key]
	if !ok {
		return Matrix{}, fmt.Errorf("bimatrix: pair %q: %w", key.String(), ErrMissingPayoff)
	}
	if swapped {
		return m.Transpose(), nil
	}

	return m, nil
}

// Lookup returns the matrix stored under the canonical key for a and b
// without reorienting it, plus the canonical key itself. The coalition
// engine uses Lookup when it indexes cells by the two players' actions
// in canonical order.
func (t Table) Lookup(a, b string) (Pair, Matrix, error) {
	key, _ := NewPair(a, b)
	m, ok := t[key]
	if !ok {
		return key, Matrix{}, fmt.Errorf("bimatrix: pair %q: %w", key.String(), ErrMissingPayoff)
	}

	return key, m, nil
}
