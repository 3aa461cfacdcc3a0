package xmlnode

import "github.com/xmldiff/xmldiff/internal/schema"

// CreateGroups builds the full Node tree rooted at rootInfo, then buckets
// every node by SchemaID. Bucket order reflects an iterative depth-first
// traversal (explicit stack, not recursion, so the walk is not bounded by
// Go's goroutine stack growth on deep documents) and is deterministic run
// to run for a fixed input, which downstream diffing relies on for
// reproducible edit ordering.
func CreateGroups(rootInfo *NodeInfo, counter *schema.Counter, registry *schema.Registry) (count int, root *Node, groups map[int][]*Node) {
	root = Build(rootInfo, nil, counter, registry)
	count = counter.Value()

	groups = map[int][]*Node{}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		groups[n.SchemaID] = append(groups[n.SchemaID], n)

		// push children in reverse so traversal order is stable and
		// matches left-to-right document order when popped.
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}

	return count, root, groups
}
