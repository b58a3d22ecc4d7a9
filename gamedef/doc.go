// Package gamedef loads hypergraph game definitions from YAML and
// builds the validated inputs the engine consumes.
//
// A definition names the players, the hyperlinks (an ordered list —
// order is the canonical coalition-enumeration order, so a YAML mapping
// would lose information), and the pairwise bimatrix table:
//
//	nodes: [a, b]
//	hyperlinks:
//	  - name: h1
//	    members: [a, b]
//	payoffs:
//	  "a,b":
//	    - [[4, 8], [3, 6]]
//	    - [[1, 3], [5, 6]]
//
// Payoff keys are "p,q" with p < q (the canonical pair order); each
// value is two rows of two [row-payoff, column-payoff] cells, with the
// first-named player as the row player.
//
// Parse decodes the YAML; Definition.Build then runs the full
// hypergraph validation and assembles the bimatrix table, so a
// successfully built definition is ready for game.New unchanged.
package gamedef
