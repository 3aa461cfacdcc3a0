package xmldiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xmldiff/xmldiff"
)

func TestStatsNodeChange(t *testing.T) {
	s := xmldiff.Stats{ExpectedNodes: 10, ActualNodes: 12}
	assert.Equal(t, 2, s.NodeChange())
}

func TestStatsPctChangedWithNoExpectedNodes(t *testing.T) {
	s := xmldiff.Stats{}
	assert.Equal(t, 0.0, s.PctChanged())
}

func TestStatsPctChanged(t *testing.T) {
	s := xmldiff.Stats{ExpectedNodes: 10, Removed: 1, Modified: 1}
	assert.InDelta(t, 0.2, s.PctChanged(), 1e-9)
}
