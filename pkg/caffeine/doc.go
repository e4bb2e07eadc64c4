// SPDX-License-Identifier: MPL-2.0

// Package caffeine models the caffeine declarative configuration language
// as consumed by the caffeine compiler: the recursive type algebra,
// blueprints (typed schemas), extendables (reusable field fragments), and
// expectations (concrete instances), plus the text rendering that turns
// them into .caffeine source files.
//
// Type descriptors are plain Go values that are constructed once and
// threaded end-to-end; the rendered type syntax is write-only output and
// is never re-parsed to recover structure.
package caffeine
