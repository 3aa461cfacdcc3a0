package xmldiff_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmldiff/xmldiff"
)

func TestReportJSONRoundTrip(t *testing.T) {
	expected := `<root><a n="1"/><b n="2"/></root>`
	actual := `<root><a n="1"/><c n="3"/></root>`
	res := diffStrings(t, expected, actual)
	report := xmldiff.NewReport(res)

	out, err := report.JSON()
	require.NoError(t, err)

	var decoded []json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Len(t, decoded, len(res.Edits))
}

func TestReportTextPlainHasNoEscapeCodes(t *testing.T) {
	expected := `<root><a n="1"/></root>`
	actual := `<root><a n="1"/><b n="2"/></root>`
	res := diffStrings(t, expected, actual)
	report := xmldiff.NewReport(res)

	buf := &bytes.Buffer{}
	require.NoError(t, report.Text(buf, true))

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "added")
}

func TestReportTextNoEditsIsEmpty(t *testing.T) {
	doc := `<root><a n="1"/></root>`
	res := diffStrings(t, doc, doc)
	report := xmldiff.NewReport(res)

	buf := &bytes.Buffer{}
	require.NoError(t, report.Text(buf, false))
	assert.Empty(t, buf.String())
}
