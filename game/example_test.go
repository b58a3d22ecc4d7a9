package game_test

import (
	"fmt"

	"github.com/katalvlaran/hypercoop/bimatrix"
	"github.com/katalvlaran/hypercoop/game"
	"github.com/katalvlaran/hypercoop/hypergraph"
)

// ExampleGame_CalculateImputations solves the smallest instance: one
// hyperlink of two players with a single 2×2 sub-game.
func ExampleGame_CalculateImputations() {
	h, err := hypergraph.New(
		[]string{"a", "b"},
		[]hypergraph.Link{{Name: "h1", Members: []string{"a", "b"}}},
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	table := bimatrix.Table{
		{P: "a", Q: "b"}: {
			{{A: 4, B: 8}, {A: 3, B: 6}},
			{{A: 1, B: 3}, {A: 5, B: 6}},
		},
	}

	g, err := game.New(h, table)
	if err != nil {
		fmt.Println(err)

		return
	}
	res, err := g.CalculateImputations()
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Printf("v(grand) = %.1f\n", res.GrandWorth())
	fmt.Printf("ksi(h1)  = %.1f\n", res.HyperlinkShares["h1"])
	fmt.Printf("eps(a)   = %.1f\n", res.PlayerShares["a"])
	fmt.Printf("eps(b)   = %.1f\n", res.PlayerShares["b"])
	// Output:
	// v(grand) = 12.0
	// ksi(h1)  = 12.0
	// eps(a)   = 4.8
	// eps(b)   = 7.2
}
