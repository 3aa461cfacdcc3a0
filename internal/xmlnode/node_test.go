package xmlnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmldiff/xmldiff/internal/schema"
)

func buildTree(root Element) (*Node, *schema.Registry, *schema.Counter) {
	registry := schema.NewRegistry()
	counter := schema.NewCounter()
	info := New(root, "", always, registry)
	// Force the lazy walk so every signature is registered before Build.
	var walk func(*NodeInfo)
	walk = func(n *NodeInfo) {
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(info)
	n := Build(info, nil, counter, registry)
	return n, registry, counter
}

func TestBuildAssignsDenseIndices(t *testing.T) {
	root := el("root", 1,
		elText("a", 2, "hello"),
		elText("b", 3, "world"),
	)
	n, _, counter := buildTree(root)

	seen := map[int]bool{}
	var collect func(*Node)
	collect = func(x *Node) {
		seen[x.Index] = true
		for _, c := range x.Children {
			collect(c)
		}
	}
	collect(n)

	assert.Equal(t, 3, counter.Value())
	assert.Len(t, seen, 3)
	for i := 0; i < 3; i++ {
		assert.True(t, seen[i], "index %d should be present", i)
	}
}

func TestParentLinkInvariant(t *testing.T) {
	root := el("root", 1, elText("a", 2, "x"))
	n, _, _ := buildTree(root)
	require.Len(t, n.Children, 1)
	assert.Same(t, n, n.Children[0].Parent)
	assert.Nil(t, n.Parent)
}

func TestCompareToDifferentSchema(t *testing.T) {
	a := el("root", 1, elText("a", 2, "x"))
	b := el("root", 1, elText("b", 2, "x"))

	registry := schema.NewRegistry()
	infoA := New(a, "", always, registry)
	infoB := New(b, "", always, registry)
	infoA.Children()
	infoB.Children()

	na := Build(infoA, nil, schema.NewCounter(), registry)
	nb := Build(infoB, nil, schema.NewCounter(), registry)

	assert.Equal(t, 0.0, na.Children[0].CompareTo(nb.Children[0]))
}

func TestIsEmpty(t *testing.T) {
	root := el("root", 1, el("a", 2))
	n, _, _ := buildTree(root)
	assert.True(t, n.Children[0].IsEmpty())
}

func TestTryMatchExclusive(t *testing.T) {
	a := &Node{}
	b := &Node{}
	c := &Node{}

	assert.True(t, a.TryMatch(b))
	assert.False(t, a.TryMatch(c))
	assert.False(t, c.TryMatch(b))
	assert.True(t, a.Matched)
	assert.True(t, b.Matched)
	assert.False(t, c.Matched)
}
