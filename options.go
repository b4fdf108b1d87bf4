package extglob

import (
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

var defaultConfig = config{
	unixify:         filepath.Separator != '/',
	caseSensitive:   true,
	matchLeadingDot: false,
	globStar:        true,
}

type config struct {
	unixify         bool
	caseSensitive   bool
	matchLeadingDot bool
	globStar        bool
}

// Option functions optionally alter how patterns are parsed and matched.
type Option = func(*config)

// Unixify changes how backslashes are interpreted. If enabled, backslashes in
// candidates are treated as path separators, and a backslash in a pattern that
// is not followed by a glob metacharacter is also a path separator.
// By default, Unixify is enabled if filepath.Separator is not /
// (i.e. on Windows) and disabled otherwise.
func Unixify(enable bool) Option {
	return func(c *config) {
		c.unixify = enable
	}
}

// CaseSensitive changes whether literals and character classes compare
// case-sensitively. Enabled by default.
func CaseSensitive(enable bool) Option {
	return func(c *config) {
		c.caseSensitive = enable
	}
}

// MatchLeadingDot changes whether wildcards (*, ?, **, negated groups) may
// match a '.' at the start of a path segment. A literal '.' in the pattern
// always matches one. Disabled by default.
func MatchLeadingDot(enable bool) Option {
	return func(c *config) {
		c.matchLeadingDot = enable
	}
}

// EnableGlobStar changes how ** is parsed. If enabled, a ** that forms a
// whole path segment matches zero or more segments. If disabled, ** is
// equivalent to *. Enabled by default.
func EnableGlobStar(enable bool) Option {
	return func(c *config) {
		c.globStar = enable
	}
}

// resolveOptions applies opts over the defaults.
func resolveOptions(opts []Option) config {
	cfg := defaultConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	return cfg
}

// flags packs the config into a bitmask.
func (c config) flags() byte {
	var b byte
	for i, f := range []bool{c.unixify, c.caseSensitive, c.matchLeadingDot, c.globStar} {
		if f {
			b |= 1 << i
		}
	}
	return b
}

// fingerprint hashes a pattern together with the options it was resolved
// with.
func (c config) fingerprint(pattern string) uint64 {
	d := xxhash.New()
	d.Write([]byte{c.flags()})
	d.WriteString(pattern)
	return d.Sum64()
}
