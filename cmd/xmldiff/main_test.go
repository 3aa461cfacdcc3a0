package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestRunExitsCleanOnIdenticalDocuments(t *testing.T) {
	doc := `<root><a n="1"/></root>`
	expected := writeTemp(t, "expected.xml", doc)
	actual := writeTemp(t, "actual.xml", doc)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{expected, actual}, stdout, stderr)

	assert.Equal(t, exitClean, code)
}

func TestRunExitsWithEditsWhenDocumentsDiffer(t *testing.T) {
	expected := writeTemp(t, "expected.xml", `<root><a n="1"/></root>`)
	actual := writeTemp(t, "actual.xml", `<root><a n="1"/><b n="2"/></root>`)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{expected, actual}, stdout, stderr)

	assert.Equal(t, exitEdits, code)
	assert.NotEmpty(t, stdout.String())
}

func TestRunUsageErrorOnWrongArgCount(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{"only-one.xml"}, stdout, stderr)

	assert.Equal(t, exitUsage, code)
}

func TestRunFailsOnMissingFile(t *testing.T) {
	actual := writeTemp(t, "actual.xml", `<root/>`)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{filepath.Join(t.TempDir(), "missing.xml"), actual}, stdout, stderr)

	assert.Equal(t, exitFail, code)
}

func TestRunJSONFormat(t *testing.T) {
	expected := writeTemp(t, "expected.xml", `<root><a n="1"/></root>`)
	actual := writeTemp(t, "actual.xml", `<root><a n="1"/><b n="2"/></root>`)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{"--format", "json", expected, actual}, stdout, stderr)

	assert.Equal(t, exitEdits, code)
	assert.Contains(t, stdout.String(), "added")
}
