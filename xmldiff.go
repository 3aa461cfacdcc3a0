package xmldiff

import (
	"math"
	"sort"

	"github.com/xmldiff/xmldiff/internal/matcher"
	"github.com/xmldiff/xmldiff/internal/schema"
	"github.com/xmldiff/xmldiff/internal/xmlnode"
)

// modifiedEpsilon is the tolerance against a perfect node_score of 1.0
// below which a matched pair produces no Modified edit — trees that differ
// only in property ordering (already normalized away by schema flattening)
// must not be reported as changed.
const modifiedEpsilon = 1e-5

// Result is the fully materialized outcome of one Diff call: the edit
// script and the node-count statistics gathered while computing it.
type Result struct {
	Edits []Edit
	Stats Stats
}

// Diff computes the edit script that transforms expected into actual.
// expected and actual are the root elements of two already-parsed element
// trees; xmldiff never parses XML itself (see internal/xmlio for a
// concrete parser). The returned edit slice is fully materialized; nothing
// is streamed and nothing persists between calls.
func Diff(expected, actual xmlnode.Element, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	registry := schema.NewRegistry()
	expectedInfo := xmlnode.New(expected, "", cfg.Predicate, registry)
	actualInfo := xmlnode.New(actual, "", cfg.Predicate, registry)

	// Both trees must be fully walked, and every signature/property-name
	// pair registered, before either is materialized into Nodes: Format
	// depends on the schema's property-name set being complete across
	// *both* documents.
	forceWalk(expectedInfo)
	forceWalk(actualInfo)

	expectedCount, _, expectedGroups := xmlnode.CreateGroups(expectedInfo, schema.NewCounter(), registry)
	actualCount, _, actualGroups := xmlnode.CreateGroups(actualInfo, schema.NewCounter(), registry)

	comparer := matcher.NewComparer(expectedCount, actualCount)

	var edits []Edit
	for schemaID := 0; schemaID < registry.Count(); schemaID++ {
		eNodes, eOK := expectedGroups[schemaID]
		aNodes, aOK := actualGroups[schemaID]

		switch {
		case eOK && aOK:
			edits = append(edits, diffBucket(comparer, eNodes, aNodes, cfg)...)
		case eOK:
			edits = append(edits, removedEdits(eNodes, cfg)...)
		case aOK:
			edits = append(edits, addedEdits(aNodes, cfg)...)
		}
	}

	stats := Stats{ExpectedNodes: expectedCount, ActualNodes: actualCount}
	for _, e := range edits {
		switch e.Op {
		case Added:
			stats.Added++
		case Removed:
			stats.Removed++
		case Modified:
			stats.Modified++
		}
	}

	return &Result{Edits: edits, Stats: stats}, nil
}

// forceWalk recursively visits every NodeInfo's Children(), which is the
// only place lazy child construction (and its schema registration side
// effect) happens.
func forceWalk(n *xmlnode.NodeInfo) {
	for _, c := range n.Children() {
		forceWalk(c)
	}
}

// diffBucket matches nodes sharing one schema: enumerate candidates, sort
// by average score descending, greedily match under the exclusivity rule
// until every node on the smaller side is accounted for, then report
// leftover expected nodes as Removed and leftover actual nodes as Added.
func diffBucket(c *matcher.Comparer, eNodes, aNodes []*xmlnode.Node, cfg *Config) []Edit {
	pairs := c.Pairs(eNodes, aNodes)
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].AverageScore > pairs[j].AverageScore
	})

	target := len(eNodes)
	if len(aNodes) < target {
		target = len(aNodes)
	}

	var edits []Edit
	matched := 0
	for _, p := range pairs {
		if matched >= target {
			break
		}
		if !p.Expected.TryMatch(p.Actual) {
			continue
		}
		matched++
		if math.Abs(p.NodeScore-1.0) > modifiedEpsilon {
			edits = append(edits, Edit{
				Op:           Modified,
				Expected:     p.Expected.Element,
				Actual:       p.Actual.Element,
				ExpectedLine: p.Expected.Element.Line(),
				ActualLine:   p.Actual.Element.Line(),
			})
		}
	}

	for _, e := range eNodes {
		if !e.Matched {
			edits = append(edits, removedEdits([]*xmlnode.Node{e}, cfg)...)
		}
	}
	for _, a := range aNodes {
		if !a.Matched {
			edits = append(edits, addedEdits([]*xmlnode.Node{a}, cfg)...)
		}
	}
	return edits
}

func removedEdits(nodes []*xmlnode.Node, cfg *Config) []Edit {
	var edits []Edit
	for _, n := range nodes {
		if cfg.ExcludeEmptyNodes && n.IsEmpty() {
			continue
		}
		edits = append(edits, Edit{
			Op:           Removed,
			Expected:     n.Element,
			ExpectedLine: n.Element.Line(),
			ActualLine:   -1,
		})
	}
	return edits
}

func addedEdits(nodes []*xmlnode.Node, cfg *Config) []Edit {
	var edits []Edit
	for _, n := range nodes {
		if cfg.ExcludeEmptyNodes && n.IsEmpty() {
			continue
		}
		edits = append(edits, Edit{
			Op:           Added,
			Actual:       n.Element,
			ActualLine:   n.Element.Line(),
			ExpectedLine: -1,
		})
	}
	return edits
}
