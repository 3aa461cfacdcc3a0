package xmlnode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmldiff/xmldiff/internal/schema"
)

func TestCreateGroupsBucketsBySchema(t *testing.T) {
	root := el("root", 1,
		elText("movie", 2, "one"),
		elText("movie", 3, "two"),
		elText("director", 4, "three"),
	)

	registry := schema.NewRegistry()
	info := New(root, "", always, registry)
	for _, c := range info.Children() {
		c.Children()
	}

	count, tree, groups := CreateGroups(info, schema.NewCounter(), registry)

	assert.Equal(t, 4, count) // root + 2 movie + 1 director
	require.NotNil(t, tree)
	require.Len(t, groups, 3) // root, movie, director signatures

	movieID, _ := registry.Format("root.movie", nil)
	assert.Len(t, groups[movieID], 2)
}

func TestCreateGroupsDeterministicOrder(t *testing.T) {
	root := el("root", 1,
		elText("movie", 2, "one"),
		elText("movie", 3, "two"),
	)

	registry := schema.NewRegistry()
	info := New(root, "", always, registry)
	for _, c := range info.Children() {
		c.Children()
	}

	_, _, groups1 := CreateGroups(info, schema.NewCounter(), registry)

	registry2 := schema.NewRegistry()
	info2 := New(root, "", always, registry2)
	for _, c := range info2.Children() {
		c.Children()
	}
	_, _, groups2 := CreateGroups(info2, schema.NewCounter(), registry2)

	movieID1, _ := registry.Format("root.movie", nil)
	movieID2, _ := registry2.Format("root.movie", nil)

	require.Len(t, groups1[movieID1], 2)
	require.Len(t, groups2[movieID2], 2)

	lines := func(nodes []*Node) []int {
		out := make([]int, len(nodes))
		for i, n := range nodes {
			out[i] = n.Element.Line()
		}
		return out
	}

	if diff := cmp.Diff(lines(groups1[movieID1]), lines(groups2[movieID2])); diff != "" {
		t.Errorf("group order diverged between independent runs (-first +second):\n%s", diff)
	}
}
