package game

// Option configures a Game before first use.
type Option func(*Game)

// WithWorkers fans the per-coalition computation of the characteristic
// function out across n goroutines. Each coalition's background and
// worth passes are a pure function of the read-only inputs, so workers
// fill independent pre-allocated result slots and the output is
// bit-identical to the sequential run. Values below 2 keep the engine
// sequential.
func WithWorkers(n int) Option {
	return func(g *Game) {
		if n < 1 {
			n = 1
		}
		g.workers = n
	}
}
