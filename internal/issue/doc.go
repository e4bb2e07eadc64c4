// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling for CLI operations:
// errors carry the failed operation, the resource involved, and
// remediation suggestions, so failures surface as guidance rather than
// bare messages.
package issue
