package xmldiff

import "github.com/xmldiff/xmldiff/internal/xmlnode"

// Config is the configuration surface the core actually consumes: a
// predicate that gates which child elements participate in the diff, and a
// toggle to suppress Added/Removed edits for structurally empty nodes.
// Everything else a CLI or library caller might want to configure (output
// format, logging, config file layering) lives outside the core, in
// internal/config.
type Config struct {
	ExcludeEmptyNodes bool
	Predicate         func(xmlnode.Element) bool
}

// Option adjusts a Config. Zero or more Options can be passed to Diff.
type Option func(*Config)

// WithExcludeEmptyNodes toggles suppression of Added/Removed edits for
// nodes whose flattened property vector is empty or all-empty. Modified
// edits are never suppressed by this option.
func WithExcludeEmptyNodes(exclude bool) Option {
	return func(c *Config) { c.ExcludeEmptyNodes = exclude }
}

// WithPredicate sets the element predicate that gates which child elements
// participate in the diff. The default predicate always returns true.
func WithPredicate(p func(xmlnode.Element) bool) Option {
	return func(c *Config) { c.Predicate = p }
}

func newConfig(opts []Option) *Config {
	cfg := &Config{
		Predicate: func(xmlnode.Element) bool { return true },
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
