// SPDX-License-Identifier: MPL-2.0

package corpus

import (
	"fmt"
	"math/rand"
	"path"
	"strings"

	"github.com/charmbracelet/log"

	"caffbench/internal/builder"
	"caffbench/internal/typegen"
	"caffbench/pkg/caffeine"
)

// blueprintGroup names the Blueprints block in every generated file.
const blueprintGroup = "SLO"

type (
	// Corpus is the in-memory result of one generation pass: the rendered
	// blueprint file plus one expectation file per (org, team) directory,
	// in deterministic path order.
	Corpus struct {
		// Scale is the profile (or exp_scale_N) name; it becomes the
		// corpus directory name.
		Scale string

		// BlueprintFile is the rendered blueprints.caffeine content.
		BlueprintFile string

		// Blueprints are the generated schemas, in declaration order.
		Blueprints []caffeine.Blueprint

		// ExpectationFiles maps "org/team" to rendered slos.caffeine
		// content; Paths preserves creation order for deterministic
		// writes.
		ExpectationFiles map[string]string
		Paths            []string

		// Expectations is the total instance count across all files.
		Expectations int
	}

	// Orchestrator runs generation passes off a single seeded randomness
	// source. Each pass builds its own alias table and extendable set, so
	// no state leaks between scales.
	Orchestrator struct {
		rng *rand.Rand
	}
)

// NewOrchestrator creates an orchestrator over the process-wide seeded rng.
func NewOrchestrator(rng *rand.Rand) *Orchestrator {
	return &Orchestrator{rng: rng}
}

// Generate runs one corpus generation pass for profile p.
func (o *Orchestrator) Generate(scale string, p Profile) (*Corpus, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", scale, err)
	}
	log.Debug("generating corpus", "scale", scale, "blueprints", p.Blueprints, "complexity", p.Complexity)

	b, aliasDecls, ex, bps := o.buildBlueprints(p)

	c := &Corpus{
		Scale:            scale,
		BlueprintFile:    caffeine.GenerateBlueprintFile(blueprintGroup, aliasDecls, ex.Decls(), bps),
		Blueprints:       bps,
		ExpectationFiles: make(map[string]string),
	}

	// Each team covers a deterministic rotating subset of blueprints so
	// coverage is spread rather than duplicated uniformly.
	subsetLen := len(bps)/(p.Orgs*p.TeamsPerOrg) + 1
	for orgI := 0; orgI < p.Orgs; orgI++ {
		orgName := typegen.Orgs[orgI%len(typegen.Orgs)]
		for teamI := 0; teamI < p.TeamsPerOrg; teamI++ {
			teamName := typegen.Teams[teamI%len(typegen.Teams)]

			offset := (orgI*p.TeamsPerOrg + teamI) * subsetLen
			var sections []string
			for _, bp := range rotatingSubset(bps, offset, subsetLen) {
				exps := b.Expectations(bp, p.ExpectationsPerTeamBlueprint, orgName, teamName)
				sections = append(sections, caffeine.GenerateExpectationSection(bp.Name, exps))
				c.Expectations += len(exps)
			}
			c.addFile(path.Join(orgName, teamName), strings.Join(sections, "\n"))
		}
	}

	return c, nil
}

// buildBlueprints runs the blueprint half of a pass: fresh alias table,
// alias and extendable declarations, then one blueprint per service name,
// rotating through the service pool with numeric suffixes on repeats.
func (o *Orchestrator) buildBlueprints(p Profile) (*builder.Builder, []caffeine.AliasDecl, *builder.Extendables, []caffeine.Blueprint) {
	table := typegen.NewAliasTable()
	b := builder.New(o.rng, table)

	aliasDecls := b.Grammar().Aliases(p.Aliases)
	ex := b.BuildExtendables(p.RequiresExtendables, p.ProvidesExtendables)

	bps := make([]caffeine.Blueprint, p.Blueprints)
	for i := range bps {
		service := typegen.Services[i%len(typegen.Services)]
		name := service + "_slo"
		if i >= len(typegen.Services) {
			name = fmt.Sprintf("%s_slo_%d", service, i/len(typegen.Services))
		}
		bps[i] = b.Build(name, b.PickExtends(ex), ex, p.Complexity)
	}
	return b, aliasDecls, ex, bps
}

// rotatingSubset returns n blueprints starting at offset, wrapping around,
// deduplicated preserving first occurrence.
func rotatingSubset(bps []caffeine.Blueprint, offset, n int) []*caffeine.Blueprint {
	var out []*caffeine.Blueprint
	seen := make(map[string]bool)
	for j := offset; j < offset+n; j++ {
		bp := &bps[j%len(bps)]
		if seen[bp.Name] {
			continue
		}
		seen[bp.Name] = true
		out = append(out, bp)
	}
	return out
}

// addFile records content under relPath, appending when the path already
// exists (expectation scaling may revisit a team directory).
func (c *Corpus) addFile(relPath, content string) {
	if existing, ok := c.ExpectationFiles[relPath]; ok {
		c.ExpectationFiles[relPath] = existing + content
		return
	}
	c.ExpectationFiles[relPath] = content
	c.Paths = append(c.Paths, relPath)
}
