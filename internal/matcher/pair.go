package matcher

import "github.com/xmldiff/xmldiff/internal/xmlnode"

// Pair is an unordered-match candidate: one expected and one actual node,
// plus the three component scores and their mean.
type Pair struct {
	Expected, Actual                        *xmlnode.Node
	NodeScore, ChildrenScore, SiblingsScore float64
	AverageScore                             float64
}

// Pairs enumerates every (expected, actual) combination across the two
// buckets and emits a Pair for each that clears at least one of the
// candidate-pair thresholds. The predicate is intentionally
// (nodeScore>T1 ∧ childrenScore>T1) ∨ childrenScore>T2 ∨ siblingsScore>T2 —
// preserve this exact grouping, it is a deliberate (if debatable) design
// choice, not incidental operator precedence.
func (c *Comparer) Pairs(expected, actual []*xmlnode.Node) []*Pair {
	var pairs []*Pair
	for _, e := range expected {
		for _, a := range actual {
			nodeScore := c.NodeScore(e, a)
			childrenScore := c.ChildrenScore(e, a)
			siblingsScore := c.SiblingsScore(e, a)

			if (nodeScore > T1 && childrenScore > T1) || childrenScore > T2 || siblingsScore > T2 {
				pairs = append(pairs, &Pair{
					Expected:      e,
					Actual:        a,
					NodeScore:     nodeScore,
					ChildrenScore: childrenScore,
					SiblingsScore: siblingsScore,
					AverageScore:  (nodeScore + childrenScore + siblingsScore) / 3,
				})
			}
		}
	}
	return pairs
}
