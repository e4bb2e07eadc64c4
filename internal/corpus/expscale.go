// SPDX-License-Identifier: MPL-2.0

package corpus

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/log"

	"caffbench/internal/typegen"
	"caffbench/pkg/caffeine"
)

// GenerateExpectationScaling produces corpora that vary only in total
// expectation count. A single "large"-profile blueprint file is generated
// once and shared by every exp_scale_<N> corpus; expectations are then
// dealt round-robin over orgs and teams, with 1-5 randomly chosen
// blueprints and 1-5 instances per batch, until the target is reached.
// Team names carry a _{orgRound}_{teamRound} suffix so repeated visits to
// the same team pool entry stay unique.
func (o *Orchestrator) GenerateExpectationScaling(targets []int) ([]*Corpus, error) {
	large := DefaultProfiles()["large"]
	b, aliasDecls, ex, bps := o.buildBlueprints(large)
	blueprintFile := caffeine.GenerateBlueprintFile(blueprintGroup, aliasDecls, ex.Decls(), bps)

	corpora := make([]*Corpus, 0, len(targets))
	for _, target := range targets {
		log.Debug("generating expectation-scaling corpus", "target", target)

		c := &Corpus{
			Scale:            fmt.Sprintf("exp_scale_%d", target),
			BlueprintFile:    blueprintFile,
			Blueprints:       bps,
			ExpectationFiles: make(map[string]string),
		}

		total := 0
		orgI, teamI := 0, 0
		for total < target {
			orgName := typegen.Orgs[orgI%len(typegen.Orgs)]
			teamName := typegen.Teams[teamI%len(typegen.Teams)]

			var sections []string
			for _, bp := range o.pickBlueprints(bps) {
				remaining := target - total
				if remaining <= 0 {
					break
				}
				n := 1 + o.rng.Intn(5)
				if n > remaining {
					n = remaining
				}
				team := fmt.Sprintf("%s_%d_%d", teamName, orgI, teamI)
				exps := b.Expectations(bp, n, orgName, team)
				sections = append(sections, caffeine.GenerateExpectationSection(bp.Name, exps))
				total += n
			}
			if len(sections) > 0 {
				c.addFile(path.Join(orgName, teamName), strings.Join(sections, "\n"))
			}

			teamI++
			if teamI >= len(typegen.Teams) {
				teamI = 0
				orgI++
			}
		}

		c.Expectations = total
		corpora = append(corpora, c)
	}
	return corpora, nil
}

// pickBlueprints samples 1-5 distinct blueprints.
func (o *Orchestrator) pickBlueprints(bps []caffeine.Blueprint) []*caffeine.Blueprint {
	n := 1 + o.rng.Intn(5)
	if n > len(bps) {
		n = len(bps)
	}
	perm := o.rng.Perm(len(bps))
	out := make([]*caffeine.Blueprint, n)
	for i := 0; i < n; i++ {
		out[i] = &bps[perm[i]]
	}
	return out
}
