// SPDX-License-Identifier: MPL-2.0

// Package config loads caffbench configuration: the corpus seed, output
// directory, comparison threshold, and scale profile overrides. The
// built-in profiles work with no config file at all; an optional
// caffbench.cue file, validated against an embedded CUE schema, can
// override knobs or add profiles.
package config
