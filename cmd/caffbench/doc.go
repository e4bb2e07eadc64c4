// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for caffbench.
//
// This package implements the Cobra command hierarchy: the root command,
// corpus generation, corpus statistics, profile listing, and benchmark
// result comparison.
package cmd
