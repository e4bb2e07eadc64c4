// SPDX-License-Identifier: MPL-2.0

package benchcmp

import (
	"fmt"
	"strings"
)

// Render produces the plain-text comparison table followed by the
// PASSED/FAILED summary line.
func (r *Report) Render() string {
	nameLen := len("Benchmark")
	for _, e := range r.Entries {
		if len(e.Command) > nameLen {
			nameLen = len(e.Command)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s  %10s  %10s  %10s  Status\n", nameLen, "Benchmark", "Baseline", "Current", "Change")
	sb.WriteString(strings.Repeat("-", nameLen+50) + "\n")

	for _, e := range r.Entries {
		switch e.Status {
		case StatusNew:
			fmt.Fprintf(&sb, "%-*s  %10s  %9.1fms  %10s  --\n", nameLen, e.Command, "N/A", e.CurrentMean*1000, "new")
		case StatusRemoved:
			fmt.Fprintf(&sb, "%-*s  %9.1fms  %10s  %10s  --\n", nameLen, e.Command, e.BaselineMean*1000, "removed", "N/A")
		default:
			fmt.Fprintf(&sb, "%-*s  %9.1fms  %9.1fms  %+9.1f%%  %s\n",
				nameLen, e.Command, e.BaselineMean*1000, e.CurrentMean*1000, e.ChangePct, statusLabel(e))
		}
	}

	sb.WriteString("\n")
	if regressions := r.Regressions(); len(regressions) > 0 {
		fmt.Fprintf(&sb, "FAILED: %d regression(s) exceeded %g%% threshold:\n", len(regressions), r.ThresholdPct)
		for _, e := range regressions {
			fmt.Fprintf(&sb, "  - %s: +%.1f%%\n", e.Command, e.ChangePct)
		}
	} else {
		fmt.Fprintf(&sb, "PASSED: All benchmarks within %g%% threshold.\n", r.ThresholdPct)
	}
	return sb.String()
}

// Markdown renders the report as a markdown table suitable for terminal
// rendering or pasting into a PR comment.
func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Benchmark comparison\n\n")
	sb.WriteString("| Benchmark | Baseline | Current | Change | Status |\n")
	sb.WriteString("|---|---:|---:|---:|---|\n")

	for _, e := range r.Entries {
		switch e.Status {
		case StatusNew:
			fmt.Fprintf(&sb, "| %s | N/A | %.1fms | — | new |\n", e.Command, e.CurrentMean*1000)
		case StatusRemoved:
			fmt.Fprintf(&sb, "| %s | %.1fms | removed | — | removed |\n", e.Command, e.BaselineMean*1000)
		default:
			fmt.Fprintf(&sb, "| %s | %.1fms | %.1fms | %+.1f%% | %s |\n",
				e.Command, e.BaselineMean*1000, e.CurrentMean*1000, e.ChangePct, e.Status)
		}
	}

	sb.WriteString("\n")
	if regressions := r.Regressions(); len(regressions) > 0 {
		fmt.Fprintf(&sb, "**FAILED**: %d regression(s) exceeded the %g%% threshold.\n", len(regressions), r.ThresholdPct)
	} else {
		fmt.Fprintf(&sb, "**PASSED**: all benchmarks within the %g%% threshold.\n", r.ThresholdPct)
	}
	return sb.String()
}

// statusLabel formats the status column for the text table, matching the
// historical report wording.
func statusLabel(e Entry) string {
	switch e.Status {
	case StatusRegression:
		return fmt.Sprintf("REGRESSION (+%.1f%%)", e.ChangePct)
	case StatusImprovement:
		return fmt.Sprintf("FASTER (%.1f%%)", e.ChangePct)
	default:
		return "OK"
	}
}
