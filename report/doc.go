// Package report formats the engine's four output mappings —
// characteristic function, hyperlink shares, player baselines, player
// shares — as human-readable lines on an io.Writer. Iteration orders
// are the canonical ones (coalition enumeration order, hyperlink
// insertion order, sorted players), so output is stable across runs.
package report
