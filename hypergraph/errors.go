// SPDX-License-Identifier: MIT
// Package hypergraph: sentinel error set for structural validation.

package hypergraph

import "errors"

// Sentinel errors for hypergraph construction. All construction
// failures are non-recoverable validation errors surfaced immediately;
// callers branch with errors.Is. Messages are prefixed "hypergraph:"
// for grep-ability across logs.
var (
	// ErrUnknownNode indicates a hyperlink references a node outside the
	// declared node set.
	ErrUnknownNode = errors.New("hypergraph: hyperlink references unknown node")

	// ErrDegenerateHyperlink indicates a hyperlink with fewer than two
	// members.
	ErrDegenerateHyperlink = errors.New("hypergraph: hyperlink has fewer than two members")

	// ErrIsolatedNode indicates a declared node that belongs to no
	// hyperlink.
	ErrIsolatedNode = errors.New("hypergraph: node belongs to no hyperlink")

	// ErrRedundantHyperlink indicates one hyperlink's member set is a
	// strict subset of another's (the family must be reduced).
	ErrRedundantHyperlink = errors.New("hypergraph: hyperlink is a subset of another")

	// ErrCyclicStructure indicates the bipartite node/hyperlink
	// incidence structure contains a cycle.
	ErrCyclicStructure = errors.New("hypergraph: incidence structure contains a cycle")

	// ErrDuplicateHyperlink indicates two hyperlinks share a name.
	ErrDuplicateHyperlink = errors.New("hypergraph: duplicate hyperlink name")
)
