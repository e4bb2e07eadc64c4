// SPDX-License-Identifier: MPL-2.0

package benchcmp

import (
	"maps"
	"slices"
)

const (
	// StatusNew marks a command present only in the current run.
	StatusNew Status = "new"
	// StatusRemoved marks a command present only in the baseline run.
	StatusRemoved Status = "removed"
	// StatusRegression marks a slowdown exceeding the threshold.
	StatusRegression Status = "regression"
	// StatusImprovement marks a speedup exceeding the threshold.
	StatusImprovement Status = "improvement"
	// StatusUnchanged marks a change within the threshold.
	StatusUnchanged Status = "unchanged"
)

type (
	// Status classifies one command's timing change.
	Status string

	// Entry is the comparison outcome for one benchmark command.
	// Durations are in seconds; ChangePct is meaningless for New and
	// Removed entries.
	Entry struct {
		Command      string
		BaselineMean float64
		CurrentMean  float64
		ChangePct    float64
		Status       Status
	}

	// Report is a full comparison between two benchmark runs.
	Report struct {
		ThresholdPct float64
		Entries      []Entry
	}
)

// Compare classifies every command of the current run against the
// baseline, then appends commands that disappeared. Entries are sorted by
// command name within each group so reports are deterministic.
func Compare(baseline, current map[string]float64, thresholdPct float64) *Report {
	r := &Report{ThresholdPct: thresholdPct}

	for _, name := range slices.Sorted(maps.Keys(current)) {
		currentMean := current[name]
		baselineMean, ok := baseline[name]
		if !ok {
			r.Entries = append(r.Entries, Entry{
				Command:     name,
				CurrentMean: currentMean,
				Status:      StatusNew,
			})
			continue
		}

		changePct := (currentMean - baselineMean) / baselineMean * 100
		status := StatusUnchanged
		switch {
		case changePct > thresholdPct:
			status = StatusRegression
		case changePct < -thresholdPct:
			status = StatusImprovement
		}
		r.Entries = append(r.Entries, Entry{
			Command:      name,
			BaselineMean: baselineMean,
			CurrentMean:  currentMean,
			ChangePct:    changePct,
			Status:       status,
		})
	}

	for _, name := range slices.Sorted(maps.Keys(baseline)) {
		if _, ok := current[name]; !ok {
			r.Entries = append(r.Entries, Entry{
				Command:      name,
				BaselineMean: baseline[name],
				Status:       StatusRemoved,
			})
		}
	}

	return r
}

// Regressions returns the entries classified as regressions.
func (r *Report) Regressions() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Status == StatusRegression {
			out = append(out, e)
		}
	}
	return out
}

// Passed reports whether the comparison found no regression.
func (r *Report) Passed() bool {
	return len(r.Regressions()) == 0
}
