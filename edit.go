package xmldiff

import "github.com/xmldiff/xmldiff/internal/xmlnode"

// Op names one of the three edit kinds a diff can produce.
type Op string

const (
	// Added means a node exists in actual with no counterpart in expected.
	Added Op = "added"
	// Removed means a node exists in expected with no counterpart in actual.
	Removed Op = "removed"
	// Modified means a node exists on both sides but its own properties
	// (not those of its children) differ.
	Modified Op = "modified"
)

// Edit describes one change between an expected and an actual document.
// Exactly one of Actual/Expected is nil, unless Op is Modified, in which
// case both are present.
type Edit struct {
	Op Op

	Actual   xmlnode.Element
	Expected xmlnode.Element

	// ActualLine/ExpectedLine are 1-based source lines, or -1 when the
	// corresponding element is absent or its line is unknown.
	ActualLine   int
	ExpectedLine int
}
