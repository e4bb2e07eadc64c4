// SPDX-License-Identifier: MPL-2.0

// Package builder composes the type grammar, alias table, and value
// synthesizer into caffeine blueprints and expectations: it resolves
// extendable field contributions, selects template variables for
// indicator queries, and instantiates expectations against a blueprint's
// resolved field set.
package builder
