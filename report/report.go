package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/hypercoop/game"
)

// Write renders the full result of CalculateImputations as four
// labelled sections. Returns the first write error, if any.
func Write(w io.Writer, res *game.Result) error {
	var b strings.Builder

	b.WriteString("characteristic function:\n")
	for _, c := range res.Coalitions {
		v := res.Worth[c.Key()]
		fmt.Fprintf(&b, "  v(%s) = %.4g  strategy %s\n", c.Key(), v.Worth, formatStrategy(v.Strategy))
	}

	// Hyperlink order is the grand coalition's canonical order.
	var hyperlinks game.Coalition
	if len(res.Coalitions) > 0 {
		hyperlinks = res.Coalitions[len(res.Coalitions)-1]
	}

	b.WriteString("hyperlink imputation:\n")
	for _, h := range hyperlinks {
		fmt.Fprintf(&b, "  ksi(%s) = %.4g\n", h, res.HyperlinkShares[h])
	}

	b.WriteString("player baselines:\n")
	for _, h := range hyperlinks {
		players := sortedKeys(res.PlayerBaselines[h])
		for _, p := range players {
			fmt.Fprintf(&b, "  v(%s in %s) = %.4g\n", p, h, res.PlayerBaselines[h][p])
		}
	}

	b.WriteString("player imputation:\n")
	for _, p := range sortedKeys(res.PlayerShares) {
		fmt.Fprintf(&b, "  eps(%s) = %.4g\n", p, res.PlayerShares[p])
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

// formatStrategy renders a strategy as "a=0 b=1" in sorted node order,
// or "∅" for the trivial strategy.
func formatStrategy(s game.Strategy) string {
	if len(s) == 0 {
		return "∅"
	}
	parts := make([]string, 0, len(s))
	for _, n := range sortedKeys(s) {
		parts = append(parts, fmt.Sprintf("%s=%d", n, s[n]))
	}

	return strings.Join(parts, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
