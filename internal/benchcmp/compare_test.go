// SPDX-License-Identifier: MPL-2.0

package benchcmp

import (
	"math"
	"testing"
)

func TestCompare_Classification(t *testing.T) {
	t.Parallel()

	baseline := map[string]float64{
		"checkout": 1.000,
		"search":   0.500,
		"billing":  2.000,
		"legacy":   0.100,
	}
	current := map[string]float64{
		"checkout": 1.150, // +15%
		"search":   0.520, // +4%
		"billing":  1.600, // -20%
		"fresh":    0.300,
	}

	r := Compare(baseline, current, 10.0)

	want := map[string]Status{
		"checkout": StatusRegression,
		"search":   StatusUnchanged,
		"billing":  StatusImprovement,
		"fresh":    StatusNew,
		"legacy":   StatusRemoved,
	}
	if len(r.Entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(r.Entries))
	}
	for _, e := range r.Entries {
		if e.Status != want[e.Command] {
			t.Errorf("%s: status = %q, want %q", e.Command, e.Status, want[e.Command])
		}
	}

	if r.Passed() {
		t.Error("a +15%% change over a 10%% threshold must fail")
	}
	regs := r.Regressions()
	if len(regs) != 1 || regs[0].Command != "checkout" {
		t.Fatalf("unexpected regressions: %+v", regs)
	}
	if math.Abs(regs[0].ChangePct-15.0) > 1e-9 {
		t.Errorf("change = %v%%, want 15%%", regs[0].ChangePct)
	}
}

func TestCompare_ThresholdIsExclusive(t *testing.T) {
	t.Parallel()

	baseline := map[string]float64{"checkout": 1.000}
	current := map[string]float64{"checkout": 1.100} // exactly +10%

	r := Compare(baseline, current, 10.0)
	if !r.Passed() {
		t.Error("a change equal to the threshold is not a regression")
	}

	r = Compare(baseline, current, 9.99)
	if r.Passed() {
		t.Error("a change above the threshold is a regression")
	}
}

func TestCompare_WiderThresholdPasses(t *testing.T) {
	t.Parallel()

	baseline := map[string]float64{"checkout": 1.000}
	current := map[string]float64{"checkout": 1.150}

	if r := Compare(baseline, current, 20.0); !r.Passed() {
		t.Error("+15%% within a 20%% threshold should pass")
	}
}

func TestCompare_NewAndRemovedNeverFail(t *testing.T) {
	t.Parallel()

	r := Compare(map[string]float64{"old": 1.0}, map[string]float64{"new": 9.0}, 10.0)
	if !r.Passed() {
		t.Error("new and removed benchmarks must not fail the comparison")
	}
}

func TestCompare_DeterministicOrder(t *testing.T) {
	t.Parallel()

	baseline := map[string]float64{"b": 1, "a": 1, "zz": 1, "m": 1}
	current := map[string]float64{"m": 1, "a": 1, "c": 1, "b": 1}

	r := Compare(baseline, current, 10.0)

	var got []string
	for _, e := range r.Entries {
		got = append(got, e.Command)
	}
	// Current commands sorted first, then removed baseline commands.
	want := []string{"a", "b", "c", "m", "zz"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry order %v, want %v", got, want)
		}
	}
}
