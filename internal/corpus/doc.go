// SPDX-License-Identifier: MPL-2.0

// Package corpus drives corpus generation at named scale profiles: it
// runs one generation pass per profile (fresh alias table and extendable
// set each time), fans expectations out across organization/team pairs,
// writes the resulting .caffeine tree to disk, and collects byte-size
// statistics per scale.
package corpus
