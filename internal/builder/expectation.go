// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"fmt"

	"github.com/charmbracelet/log"

	"caffbench/pkg/caffeine"
)

// expectation window candidates, in days.
var windows = [...]int{7, 30, 90}

// Expectations instantiates count expectations against bp's resolved field
// set: one synthesized literal per field plus the fixed threshold and
// window scalars. Names are "{team}_{bp}_{i}" with i from 0, unique per
// team as long as team names are unique per (org, team) pair.
func (b *Builder) Expectations(bp *caffeine.Blueprint, count int, org, team string) []caffeine.Expectation {
	log.Debug("building expectations", "blueprint", bp.Name, "org", org, "team", team, "count", count)

	exps := make([]caffeine.Expectation, count)
	for i := range exps {
		values := make([]caffeine.ExpectationValue, len(bp.ResolvedFields))
		for j, f := range bp.ResolvedFields {
			values[j] = caffeine.ExpectationValue{
				Name:    f.Name,
				Literal: b.synth.Synthesize(f.Type),
			}
		}
		exps[i] = caffeine.Expectation{
			Name:       fmt.Sprintf("%s_%s_%d", team, bp.Name, i),
			Blueprint:  bp.Name,
			Values:     values,
			Threshold:  b.threshold(),
			WindowDays: windows[b.rng.Intn(len(windows))],
		}
	}
	return exps
}

// threshold draws from (95.0, 99.99] rounded to 2 decimals. The lower
// bound is exclusive, so the draw starts strictly above 95.00.
func (b *Builder) threshold() float64 {
	v := 95.01 + b.rng.Float64()*(99.99-95.01)
	return float64(int(v*100+0.5)) / 100
}
