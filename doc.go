// Package xmldiff computes a minimal edit script between two XML documents
// based on structural, not textual, equivalence: elements that carry the
// same data under the same hierarchy but in a different sibling order are
// considered equal and produce no edits.
//
// The algorithm normalizes both documents into a tree of Nodes sharing a
// single schema registry keyed by structural signature (a dotted path of
// element local names), scores candidate expected/actual node pairs with a
// bigram-based string similarity measure applied to node properties,
// children, and siblings, and greedily selects a one-to-one matching from
// those candidates in descending average-score order. Unmatched expected
// nodes become Removed edits, unmatched actual nodes become Added edits,
// and matched pairs whose own properties still differ become Modified
// edits.
//
// xmldiff never parses XML itself: it consumes the xmlnode.Element
// interface, so any parser able to produce a tree of those handles (with
// or without line-number tracking) can drive a diff. The internal/xmlio
// package supplies a concrete implementation built on encoding/xml for
// callers that just want to hand it two io.Readers, which is what
// cmd/xmldiff does with the two files it opens.
//
// This package intentionally reports no move edits and does not guarantee
// a globally optimal matching: it is a heuristic adapted from the
// technique described in Grégory Cobéna and Amélie Marian, "Detecting
// Changes in XML Documents", ICDE 2002, tuned for documents that are
// mostly structurally identical.
package xmldiff
