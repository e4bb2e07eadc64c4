// SPDX-License-Identifier: MPL-2.0

package config

import (
	"sort"

	"caffbench/internal/corpus"
)

// Config holds the resolved caffbench settings.
type Config struct {
	// Seed drives the single pseudo-random source for corpus generation.
	Seed int64 `mapstructure:"seed"`

	// OutDir is where corpora are written.
	OutDir string `mapstructure:"out_dir"`

	// Threshold is the default regression threshold in percent for
	// benchmark comparisons.
	Threshold float64 `mapstructure:"threshold"`

	// Profiles maps scale names to profiles. User entries override or
	// extend the built-in scales.
	Profiles map[string]corpus.Profile `mapstructure:"profiles"`
}

// DefaultConfig returns the built-in settings: the reference seed and the
// six standard scale profiles.
func DefaultConfig() *Config {
	return &Config{
		Seed:      corpus.DefaultSeed,
		OutDir:    "corpus",
		Threshold: 10.0,
		Profiles:  corpus.DefaultProfiles(),
	}
}

// ScaleNames returns the configured profile names: the built-in ordering
// first, then user-added profiles in lexical order.
func (c *Config) ScaleNames() []string {
	names := make([]string, 0, len(c.Profiles))
	seen := make(map[string]bool)
	for _, n := range corpus.DefaultScaleNames {
		if _, ok := c.Profiles[n]; ok {
			names = append(names, n)
			seen[n] = true
		}
	}
	var extra []string
	for n := range c.Profiles {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
