// SPDX-License-Identifier: MPL-2.0

// Package typegen produces random-but-deterministic caffeine type
// descriptors and literal values conforming to them.
//
// The three pieces mirror one corpus generation pass: a Grammar draws type
// descriptors under a depth budget, an AliasTable maps declared alias
// names to their underlying descriptors, and a Synthesizer emits literals
// provably inside a descriptor's value domain. All randomness flows from a
// single injected *rand.Rand, so equal seeds reproduce equal corpora
// byte for byte. None of the state outlives the pass that created it.
package typegen
