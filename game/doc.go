// Package game computes cooperative solution concepts for a hypergraph
// game: for every coalition of hyperlinks it derives a characteristic
// (worth) value and the optimal joint strategy achieving it, then
// allocates the grand-coalition worth first across hyperlinks (equal
// surplus division) and finally across players (proportional division
// by individual baselines).
//
// The engine is exact and exponential by design: every binary strategy
// assignment over a coalition's participant nodes is enumerated — no
// approximation, no pruning, no mixed strategies. Four chained passes
// produce the output:
//
//  1. background pass — for every coalition S, the unconstrained
//     optimum of its complement's hyperlinks, fixed as S's background
//     strategy;
//  2. worth pass — the constrained optimum of S itself: strategies must
//     agree with the background on every shared node; the maximum is
//     v(S);
//  3. hyperlink imputation — equal surplus division of v(grand) across
//     hyperlinks;
//  4. player imputation — per-hyperlink security-level baselines, then
//     proportional division of each hyperlink's share among its
//     members.
//
// Determinism: coalitions are enumerated by increasing size with
// hyperlink names in insertion order; strategies are enumerated in
// lexicographic order of the action tuple over the coalition's sorted
// participant nodes, and ties keep the first-seen maximum. Identical
// inputs always produce identical outputs, with or without workers.
//
// Inputs (HyperGraph, Table) are read-only; every call returns fresh
// result maps. The per-coalition computation is a pure function of the
// inputs and the coalition, so WithWorkers fans coalitions out across
// goroutines with no synchronization beyond a join.
package game
