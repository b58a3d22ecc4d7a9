// Command hypercoop loads a hypergraph game definition from YAML,
// computes the characteristic function and both imputation levels, and
// prints the result. Optionally renders the bipartite incidence
// diagram first.
package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/hypercoop/game"
	"github.com/katalvlaran/hypercoop/gamedef"
	"github.com/katalvlaran/hypercoop/render"
	"github.com/katalvlaran/hypercoop/report"
)

func main() {
	defPath := flag.String("def", "", "Path to a YAML game definition")
	workers := flag.Int("workers", runtime.NumCPU(), "Goroutines for the per-coalition fan-out")
	showDiagram := flag.Bool("render", false, "Render the bipartite incidence diagram before the report")
	flag.Parse()

	if *defPath == "" {
		glog.Exit("missing -def: a YAML game definition is required")
	}

	f, err := os.Open(*defPath)
	if err != nil {
		glog.Exitf("open definition: %v", err)
	}
	defer f.Close()

	def, err := gamedef.Load(f)
	if err != nil {
		glog.Exitf("load definition: %v", err)
	}
	h, table, err := def.Build()
	if err != nil {
		glog.Exitf("build game inputs: %v", err)
	}
	glog.Infof("loaded %d nodes, %d hyperlinks, %d payoff pairs",
		len(h.Nodes()), len(h.Hyperlinks()), len(table))

	if *showDiagram {
		if err := render.Bipartite(os.Stdout, h); err != nil {
			glog.Exitf("render: %v", err)
		}
	}

	g, err := game.New(h, table, game.WithWorkers(*workers))
	if err != nil {
		glog.Exitf("construct engine: %v", err)
	}

	start := time.Now()
	res, err := g.CalculateImputations()
	if err != nil {
		glog.Exitf("calculate imputations: %v", err)
	}
	glog.Infof("computed %d coalitions in %s (%d workers)",
		len(res.Coalitions), time.Since(start), *workers)

	if err := report.Write(os.Stdout, res); err != nil {
		glog.Exitf("report: %v", err)
	}
}
