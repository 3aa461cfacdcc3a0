// Package matcher scores candidate expected/actual node pairs and performs
// the greedy, exclusive one-to-one matching the diff engine drives edit
// emission from.
package matcher

import "github.com/xmldiff/xmldiff/internal/xmlnode"

// Direct-match and relative-match thresholds. Hard-coded tuning constants;
// preserved exactly to reproduce reference edit output.
const (
	T1 = 0.6
	T2 = 0.8
)

// Comparer memoizes node and children similarity scores over the full
// expected×actual index space of one diff invocation — sized by total node
// count per side, not by the bucket currently being compared, because
// SiblingsScore looks up a node's parent, and a parent can sit outside the
// bucket its child belongs to.
type Comparer struct {
	expectedCount, actualCount int

	nodeScores    []float64
	nodeComputed  []bool
	childrenScores []float64
	childrenComputed []bool
}

// NewComparer allocates dense E×A memoization tables sized by the total
// node counts on each side.
func NewComparer(expectedCount, actualCount int) *Comparer {
	size := expectedCount * actualCount
	return &Comparer{
		expectedCount:    expectedCount,
		actualCount:      actualCount,
		nodeScores:       make([]float64, size),
		nodeComputed:     make([]bool, size),
		childrenScores:   make([]float64, size),
		childrenComputed: make([]bool, size),
	}
}

func (c *Comparer) key(e, a *xmlnode.Node) int {
	return e.Index*c.actualCount + a.Index
}

// NodeScore returns the cached similarity of e and a's own properties.
func (c *Comparer) NodeScore(e, a *xmlnode.Node) float64 {
	k := c.key(e, a)
	if c.nodeComputed[k] {
		return c.nodeScores[k]
	}
	score := e.CompareTo(a)
	c.nodeScores[k] = score
	c.nodeComputed[k] = true
	return score
}

// ChildrenScore returns the cached similarity of e and a's children,
// considered as a set: 1.0 if both have no children, 0.0 if exactly one
// does, otherwise the fraction of children count_matches can pair off
// under the T1 node-score threshold, normalized by the larger child count.
func (c *Comparer) ChildrenScore(e, a *xmlnode.Node) float64 {
	k := c.key(e, a)
	if c.childrenComputed[k] {
		return c.childrenScores[k]
	}

	var score float64
	switch {
	case len(e.Children) == 0 && len(a.Children) == 0:
		score = 1.0
	case len(e.Children) == 0 || len(a.Children) == 0:
		score = 0.0
	default:
		matches := c.countMatches(e.Children, a.Children)
		max := len(e.Children)
		if len(a.Children) > max {
			max = len(a.Children)
		}
		score = float64(matches) / float64(max)
	}

	c.childrenScores[k] = score
	c.childrenComputed[k] = true
	return score
}

// SiblingsScore reuses the parents' ChildrenScore: both nil parents match
// trivially, exactly one nil parent is totally distinct, otherwise it is
// the similarity of the two nodes viewed as members of their parents'
// child sets.
func (c *Comparer) SiblingsScore(e, a *xmlnode.Node) float64 {
	switch {
	case e.Parent == nil && a.Parent == nil:
		return 1.0
	case e.Parent == nil || a.Parent == nil:
		return 0.0
	default:
		return c.ChildrenScore(e.Parent, a.Parent)
	}
}

// countMatches approximates the size of a maximum bipartite matching
// between eChildren and aChildren under the relation NodeScore > T1, using
// an augmenting-path sweep that reuses each row's candidate stack across
// displacements instead of recomputing it. This is a heuristic, not a
// proven maximum matching (see design notes): it is sufficient to derive a
// similarity fraction, not to guarantee optimality.
func (c *Comparer) countMatches(eChildren, aChildren []*xmlnode.Node) int {
	const unset = -1
	matches := make([]int, len(aChildren))
	for i := range matches {
		matches[i] = unset
	}

	candidateStacks := make([][]int, len(eChildren))
	for x, e := range eChildren {
		for y, a := range aChildren {
			if c.NodeScore(e, a) > T1 {
				candidateStacks[x] = append(candidateStacks[x], y)
			}
		}
	}

	count := 0
	for x := range eChildren {
		currentX := x

		for len(candidateStacks[currentX]) > 0 {
			stack := candidateStacks[currentX]
			y := stack[len(stack)-1]
			candidateStacks[currentX] = stack[:len(stack)-1]

			prev := matches[y]
			if prev == unset {
				matches[y] = currentX
				count++
				break
			}

			if len(candidateStacks[prev]) == 0 {
				break
			}
			matches[y] = currentX
			currentX = prev
		}
	}

	return count
}
