package game

import "sync"

// BackgroundStrategies runs the first pass alone: for every coalition
// S, the unconstrained optimum of the hyperlinks in its complement.
// The returned map is keyed by Coalition.Key() of S (not of the
// complement): the entry is the background S must honor when it
// optimizes itself. The grand coalition has an empty complement and an
// empty background.
func (g *Game) BackgroundStrategies() (map[string]Strategy, error) {
	out := make(map[string]Strategy)
	for _, c := range g.Coalitions() {
		bg, err := g.backgroundStrategy(c)
		if err != nil {
			return nil, err
		}
		out[c.Key()] = bg
	}

	return out, nil
}

// backgroundStrategy computes the complement's unconstrained optimum
// for one coalition.
func (g *Game) backgroundStrategy(c Coalition) (Strategy, error) {
	comp := g.Complement(c)
	p := g.collectParticipants(comp)
	_, bg, err := g.maximize(p, nil)
	if err != nil {
		return nil, err
	}

	return bg, nil
}

// worth computes one coalition's characteristic-function entry: the
// constrained optimum over its own hyperlinks, with shared nodes pinned
// to the background strategy.
func (g *Game) worth(c Coalition, background Strategy) (CoalitionValue, error) {
	p := g.collectParticipants(c)
	v, s, err := g.maximize(p, background)
	if err != nil {
		return CoalitionValue{}, err
	}

	return CoalitionValue{Worth: v, Strategy: s}, nil
}

// CharacteristicFunction runs passes 1 and 2 for every coalition and
// returns the characteristic function keyed by Coalition.Key(). Each
// coalition's computation is independent of every other's, so with
// WithWorkers(n>1) coalitions are fanned out across goroutines into
// pre-allocated slots; the output is identical either way.
func (g *Game) CharacteristicFunction() (map[string]CoalitionValue, error) {
	coalitions := g.Coalitions()
	values := make([]CoalitionValue, len(coalitions))
	errs := make([]error, len(coalitions))

	compute := func(i int) {
		bg, err := g.backgroundStrategy(coalitions[i])
		if err != nil {
			errs[i] = err

			return
		}
		values[i], errs[i] = g.worth(coalitions[i], bg)
	}

	if g.workers > 1 {
		var wg sync.WaitGroup
		idx := make(chan int)
		for w := 0; w < g.workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idx {
					compute(i)
				}
			}()
		}
		for i := range coalitions {
			idx <- i
		}
		close(idx)
		wg.Wait()
	} else {
		for i := range coalitions {
			compute(i)
		}
	}

	// Surface the first failure in enumeration order so parallel and
	// sequential runs fail identically.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[string]CoalitionValue, len(coalitions))
	for i, c := range coalitions {
		out[c.Key()] = values[i]
	}

	return out, nil
}
