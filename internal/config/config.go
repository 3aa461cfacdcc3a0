// Package config resolves xmldiff's runtime configuration by layering an
// optional YAML file underneath explicit flag overrides, the same
// "flags win, then file, then default" order the corpus's CLI front ends
// apply to their own settings.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xmldiff/xmldiff/internal/xmlnode"
)

// defaultConfigFile is checked when no --config path is given.
const defaultConfigFile = "xmldiff.yaml"

// Config is the fully resolved set of options a CLI invocation needs: the
// diff-affecting options plus reporting/logging knobs the core itself
// never sees.
type Config struct {
	ExcludeEmptyNodes bool     `yaml:"exclude_empty_nodes"`
	IncludeTags       []string `yaml:"include_tags"`
	ExcludeTags       []string `yaml:"exclude_tags"`
	OutputFormat      string   `yaml:"output_format"`
	LogLevel          string   `yaml:"log_level"`
}

// Defaults returns the built-in configuration before any file or flag is
// applied.
func Defaults() *Config {
	return &Config{
		ExcludeEmptyNodes: false,
		OutputFormat:      "text",
		LogLevel:          "info",
	}
}

// FlagOverrides carries only the settings a caller explicitly set on the
// command line; a nil pointer field means "not set", so it does not
// shadow a value from the config file.
type FlagOverrides struct {
	ExcludeEmptyNodes *bool
	IncludeTags       *string
	ExcludeTags       *string
	OutputFormat      *string
	LogLevel          *string
}

// Load builds the effective Config: defaults, then an optional YAML file
// (path if non-empty, otherwise ./xmldiff.yaml if it exists), then any
// explicitly set flags on top.
func Load(path string, flags FlagOverrides) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "xmldiff: read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "xmldiff: parse config %s", path)
		}
	}

	applyFlags(cfg, flags)
	return cfg, nil
}

func applyFlags(cfg *Config, flags FlagOverrides) {
	if flags.ExcludeEmptyNodes != nil {
		cfg.ExcludeEmptyNodes = *flags.ExcludeEmptyNodes
	}
	if flags.IncludeTags != nil {
		cfg.IncludeTags = splitTags(*flags.IncludeTags)
	}
	if flags.ExcludeTags != nil {
		cfg.ExcludeTags = splitTags(*flags.ExcludeTags)
	}
	if flags.OutputFormat != nil {
		cfg.OutputFormat = *flags.OutputFormat
	}
	if flags.LogLevel != nil {
		cfg.LogLevel = *flags.LogLevel
	}
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Predicate builds the xmlnode element predicate IncludeTags/ExcludeTags
// describe. Empty (or nil) IncludeTags and ExcludeTags means always-true.
// IncludeTags, when non-empty, is an allowlist: only those local names pass.
// ExcludeTags is then applied as a denylist on top of whatever IncludeTags
// allowed.
func (c *Config) Predicate() func(xmlnode.Element) bool {
	if len(c.IncludeTags) == 0 && len(c.ExcludeTags) == 0 {
		return func(xmlnode.Element) bool { return true }
	}

	include := toSet(c.IncludeTags)
	exclude := toSet(c.ExcludeTags)

	return func(el xmlnode.Element) bool {
		name := el.LocalName()
		if len(include) > 0 && !include[name] {
			return false
		}
		if exclude[name] {
			return false
		}
		return true
	}
}

func toSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
