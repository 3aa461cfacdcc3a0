package xmldiff

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

// Report wraps a Result for rendering. It is a thin view: it holds no
// state of its own beyond a pointer to the Result it renders.
type Report struct {
	Result *Result
}

// NewReport wraps res for rendering.
func NewReport(res *Result) *Report {
	return &Report{Result: res}
}

// jsonEdit is the wire shape one Edit marshals to: a three-element array
// of [op, path, value], where value is the actual line number, or null for
// Removed. path is the actual element's local name when present, otherwise
// the expected element's.
type jsonEdit [3]interface{}

// JSON marshals the report's edits as a compact array of [op, path, value]
// triples, mirroring the teacher's array-shaped Delta.MarshalJSON
// convention adapted to the two-sided expected/actual model.
func (r *Report) JSON() ([]byte, error) {
	out := make([]jsonEdit, 0, len(r.Result.Edits))
	for _, e := range r.Result.Edits {
		var path string
		var value interface{}

		switch e.Op {
		case Removed:
			path = e.Expected.LocalName()
			value = nil
		case Added:
			path = e.Actual.LocalName()
			value = e.ActualLine
		case Modified:
			path = e.Actual.LocalName()
			value = e.ActualLine
		}

		out = append(out, jsonEdit{e.Op, path, value})
	}
	return json.Marshal(out)
}

// colorOf maps an Op to the teacher's red/green/blue delete/insert/change
// convention: red for Removed, green for Added, blue for Modified.
func colorOf(op Op) string {
	switch op {
	case Removed:
		return "red"
	case Added:
		return "green"
	case Modified:
		return "blue"
	default:
		return ""
	}
}

// Text writes one line per edit to w: "<op> <path>: expected=<line>
// actual=<line>". When colorize is true, lines are only colorized if w
// exposes a file descriptor (as an *os.File does) pointing at a terminal;
// a non-TTY destination (a pipe, a
// file, a buffer) is always rendered plain regardless of colorize, since
// ANSI escapes in a redirected log are noise rather than signal.
func (r *Report) Text(w io.Writer, colorize bool) error {
	useColor := colorize && isTerminal(w)

	for _, e := range r.Result.Edits {
		path := ""
		if e.Actual != nil {
			path = e.Actual.LocalName()
		} else if e.Expected != nil {
			path = e.Expected.LocalName()
		}

		line := fmt.Sprintf("%s %s: expected=%d actual=%d", e.Op, path, e.ExpectedLine, e.ActualLine)
		if useColor {
			line = ansi.Color(line, colorOf(e.Op))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
