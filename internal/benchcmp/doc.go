// SPDX-License-Identifier: MPL-2.0

// Package benchcmp compares two hyperfine benchmark result files and
// classifies the per-command timing change against a configurable
// regression threshold.
package benchcmp
