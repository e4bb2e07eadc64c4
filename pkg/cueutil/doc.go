// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for validating CUE
// configuration input: size limits for user-supplied files and error
// formatting that prefixes CUE validation failures with the offending
// file and JSON path.
package cueutil
