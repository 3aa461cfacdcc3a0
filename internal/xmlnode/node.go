package xmlnode

import (
	"github.com/xmldiff/xmldiff/internal/bigram"
	"github.com/xmldiff/xmldiff/internal/schema"
)

// Node is a materialized tree node: an index dense within one document
// tree, a non-owning parent back-reference, an owned child sequence, the
// schema id and flattened property vector shared columns are aligned to,
// and a mutable Matched flag used exclusively by the greedy matching pass.
type Node struct {
	Index      int
	Parent     *Node
	Children   []*Node
	Element    Element
	SchemaID   int
	Properties []bigram.Bigram
	Matched    bool
}

// Build materializes the Node tree rooted at info, assigning indices from
// counter in children-first (post-order) traversal order: a node's
// children are fully materialized, recursively, before the node itself
// draws its own index. registry must already have accumulated every
// signature/property-name pair for both documents' trees before Build is
// called for either side, so that Format returns column-aligned vectors.
func Build(info *NodeInfo, parent *Node, counter *schema.Counter, registry *schema.Registry) *Node {
	n := &Node{Parent: parent, Element: info.Element()}

	for _, childInfo := range info.Children() {
		n.Children = append(n.Children, Build(childInfo, n, counter, registry))
	}

	n.Index = counter.Next()
	n.SchemaID, n.Properties = registry.Format(info.Signature, info.Properties)
	return n
}

// IsEmpty reports whether the node carries no properties, or only empty
// ones.
func (n *Node) IsEmpty() bool {
	for _, p := range n.Properties {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// CompareTo scores the similarity of n and other's own properties, ignoring
// children entirely. Nodes with different schemas never match (0.0); two
// nodes with no properties at all are trivially identical (1.0); otherwise
// the score is the arithmetic mean of the column-wise Bigram comparisons,
// valid because both sides share a SchemaRegistry and therefore agree on
// vector length and column semantics whenever SchemaID matches.
func (n *Node) CompareTo(other *Node) float64 {
	if n.SchemaID != other.SchemaID {
		return 0.0
	}
	if len(n.Properties) == 0 {
		return 1.0
	}

	var sum float64
	for i := range n.Properties {
		sum += bigram.Compare(n.Properties[i], other.Properties[i])
	}
	return sum / float64(len(n.Properties))
}

// TryMatch atomically pairs n and other if, and only if, neither is
// already matched. On success both Matched flags are set and TryMatch
// returns true; a match, once made, never reverts within one diff
// invocation.
func (n *Node) TryMatch(other *Node) bool {
	if n.Matched || other.Matched {
		return false
	}
	n.Matched = true
	other.Matched = true
	return true
}
