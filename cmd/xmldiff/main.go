// Command xmldiff computes a structural edit script between two XML
// documents and reports it as text, colorized text, or JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/xmldiff/xmldiff"
	"github.com/xmldiff/xmldiff/internal/config"
	"github.com/xmldiff/xmldiff/internal/logging"
	"github.com/xmldiff/xmldiff/internal/xmlio"
)

// Exit codes: 0 clean diff, 1 edits found, 2 usage error, 3 parse/IO error.
const (
	exitClean = 0
	exitEdits = 1
	exitUsage = 2
	exitFail  = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xmldiff", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a YAML config file")
	excludeEmpty := fs.Bool("exclude-empty", false, "suppress added/removed edits for empty nodes")
	include := fs.String("include-tags", "", "comma-separated element local names to include")
	exclude := fs.String("exclude-tags", "", "comma-separated element local names to exclude")
	format := fs.String("format", "", "output format: text, color, or json")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <expected.xml> <actual.xml>\n\n", fs.Name())
		fmt.Fprintln(stderr, "Computes a structural diff between two XML documents.")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	remaining := fs.Args()
	if len(remaining) != 2 {
		fmt.Fprintln(stderr, "error: exactly two positional arguments are required")
		fs.Usage()
		return exitUsage
	}

	flags := config.FlagOverrides{}
	if isSet(fs, "exclude-empty") {
		flags.ExcludeEmptyNodes = excludeEmpty
	}
	if isSet(fs, "include-tags") {
		flags.IncludeTags = include
	}
	if isSet(fs, "exclude-tags") {
		flags.ExcludeTags = exclude
	}
	if isSet(fs, "format") {
		flags.OutputFormat = format
	}
	if isSet(fs, "log-level") {
		flags.LogLevel = logLevel
	}

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		logrus.WithError(err).Error("failed to load configuration")
		return exitFail
	}
	logging.Setup(cfg.LogLevel)

	expectedPath, actualPath := remaining[0], remaining[1]
	res, err := diffFiles(expectedPath, actualPath, cfg)
	if err != nil {
		logrus.WithError(err).Error("diff failed")
		return exitFail
	}

	report := xmldiff.NewReport(res)
	if err := render(report, cfg.OutputFormat, stdout); err != nil {
		logrus.WithError(err).Error("failed to render report")
		return exitFail
	}

	if len(res.Edits) > 0 {
		return exitEdits
	}
	return exitClean
}

func diffFiles(expectedPath, actualPath string, cfg *config.Config) (*xmldiff.Result, error) {
	ctx := context.Background()

	expectedFile, err := os.Open(expectedPath)
	if err != nil {
		return nil, errors.Wrap(err, "xmldiff: open expected document")
	}
	defer expectedFile.Close()

	actualFile, err := os.Open(actualPath)
	if err != nil {
		return nil, errors.Wrap(err, "xmldiff: open actual document")
	}
	defer actualFile.Close()

	expected, err := xmlio.Parse(ctx, expectedFile)
	if err != nil {
		return nil, errors.Wrap(err, "xmldiff: parse expected document")
	}
	actual, err := xmlio.Parse(ctx, actualFile)
	if err != nil {
		return nil, errors.Wrap(err, "xmldiff: parse actual document")
	}

	predicate := cfg.Predicate()
	return xmldiff.Diff(expected, actual,
		xmldiff.WithExcludeEmptyNodes(cfg.ExcludeEmptyNodes),
		xmldiff.WithPredicate(predicate),
	)
}

func render(report *xmldiff.Report, format string, w io.Writer) error {
	switch format {
	case "json":
		out, err := report.JSON()
		if err != nil {
			return errors.Wrap(err, "xmldiff: marshal report")
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "color":
		return report.Text(w, true)
	default:
		return report.Text(w, false)
	}
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
