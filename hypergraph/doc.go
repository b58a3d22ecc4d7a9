// Package hypergraph defines the validated, immutable interaction
// structure of a cooperative hypergraph game: a finite node set
// (players) plus named hyperlinks (overlapping player groups).
//
// Construction is a single validating factory: New either returns a
// fully valid, frozen *HyperGraph or the first violated invariant's
// sentinel error — never a partially constructed object. The five
// invariants, checked in this fixed order, each failing fast:
//
//  1. every node referenced by a hyperlink belongs to the node set
//     (ErrUnknownNode);
//  2. every hyperlink has at least two members (ErrDegenerateHyperlink);
//  3. every declared node belongs to some hyperlink (ErrIsolatedNode);
//  4. no hyperlink's member set is a strict subset of another's
//     (ErrRedundantHyperlink);
//  5. the bipartite node/hyperlink incidence structure is a forest
//     (ErrCyclicStructure).
//
// Insertion order of hyperlinks is preserved and is the canonical
// enumeration order downstream: coalition enumeration and tie-breaking
// in the game engine depend on it, so hyperlinks are kept as an ordered
// list, never as a bare map.
//
// Accessors return copies; consumers (the game engine, renderers)
// cannot mutate a constructed HyperGraph. The incidence view exists for
// the forest check and for external bipartite-diagram rendering; the
// package does no layout itself.
package hypergraph
