// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// These benchmarks cover the hot paths of corpus generation:
//   - type grammar draws and literal synthesis
//   - blueprint and expectation assembly
//   - file rendering
//   - full per-scale generation passes
//   - hyperfine result comparison
//
// To generate a PGO profile, run:
//
//	go test -bench=. -cpuprofile=default.pgo ./internal/benchmark/
package benchmark
