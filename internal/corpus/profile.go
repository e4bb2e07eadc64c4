// SPDX-License-Identifier: MPL-2.0

package corpus

import (
	"fmt"

	"caffbench/internal/builder"
)

// DefaultSeed reproduces the reference corpus; any other seed yields a
// different but equally deterministic corpus.
const DefaultSeed int64 = 42

// Profile enumerates the knobs of one corpus scale.
type Profile struct {
	// Blueprints is the number of blueprint definitions to generate.
	Blueprints int `mapstructure:"blueprints" toml:"blueprints"`

	// Complexity is the blueprint complexity tier.
	Complexity builder.Complexity `mapstructure:"complexity" toml:"complexity"`

	// Aliases is the number of type alias declarations.
	Aliases int `mapstructure:"aliases" toml:"aliases"`

	// RequiresExtendables and ProvidesExtendables count the extendable
	// declarations of each kind.
	RequiresExtendables int `mapstructure:"requires_extendables" toml:"requires_extendables"`
	ProvidesExtendables int `mapstructure:"provides_extendables" toml:"provides_extendables"`

	// Orgs and TeamsPerOrg control the expectation directory fan-out.
	Orgs        int `mapstructure:"orgs" toml:"orgs"`
	TeamsPerOrg int `mapstructure:"teams_per_org" toml:"teams_per_org"`

	// ExpectationsPerTeamBlueprint is the instance count per (team,
	// blueprint) pair.
	ExpectationsPerTeamBlueprint int `mapstructure:"expectations_per_team_blueprint" toml:"expectations_per_team_blueprint"`
}

// Validate checks the profile's invariants.
func (p Profile) Validate() error {
	if _, err := p.Complexity.IsValid(); err != nil {
		return err
	}
	if p.Blueprints < 1 {
		return fmt.Errorf("blueprints must be >= 1, got %d", p.Blueprints)
	}
	for name, v := range map[string]int{
		"aliases":              p.Aliases,
		"requires_extendables": p.RequiresExtendables,
		"provides_extendables": p.ProvidesExtendables,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", name, v)
		}
	}
	if p.Orgs < 1 || p.TeamsPerOrg < 1 {
		return fmt.Errorf("orgs and teams_per_org must be >= 1, got %d and %d", p.Orgs, p.TeamsPerOrg)
	}
	if p.ExpectationsPerTeamBlueprint < 1 {
		return fmt.Errorf("expectations_per_team_blueprint must be >= 1, got %d", p.ExpectationsPerTeamBlueprint)
	}
	return nil
}

// DefaultScaleNames lists the built-in profiles in generation order.
var DefaultScaleNames = []string{"small", "medium", "large", "huge", "insane", "absurd"}

// ExpectationScalingTargets are the corpora that vary only in expectation
// count, generated against a fixed "large" blueprint file.
var ExpectationScalingTargets = []int{10, 50, 100, 500, 1000, 2500, 5000}

// DefaultProfiles returns the built-in scale profiles.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		"small": {
			Blueprints: 2, Complexity: builder.ComplexitySmall,
			Orgs: 1, TeamsPerOrg: 1, ExpectationsPerTeamBlueprint: 2,
		},
		"medium": {
			Blueprints: 5, Complexity: builder.ComplexityMedium,
			Aliases: 2, RequiresExtendables: 1, ProvidesExtendables: 1,
			Orgs: 2, TeamsPerOrg: 2, ExpectationsPerTeamBlueprint: 3,
		},
		"large": {
			Blueprints: 20, Complexity: builder.ComplexityLarge,
			Aliases: 5, RequiresExtendables: 3, ProvidesExtendables: 3,
			Orgs: 3, TeamsPerOrg: 4, ExpectationsPerTeamBlueprint: 5,
		},
		"huge": {
			Blueprints: 50, Complexity: builder.ComplexityHuge,
			Aliases: 10, RequiresExtendables: 5, ProvidesExtendables: 5,
			Orgs: 5, TeamsPerOrg: 5, ExpectationsPerTeamBlueprint: 8,
		},
		"insane": {
			Blueprints: 50, Complexity: builder.ComplexityHuge,
			Aliases: 10, RequiresExtendables: 5, ProvidesExtendables: 5,
			Orgs: 8, TeamsPerOrg: 10, ExpectationsPerTeamBlueprint: 15,
		},
		"absurd": {
			Blueprints: 50, Complexity: builder.ComplexityHuge,
			Aliases: 10, RequiresExtendables: 5, ProvidesExtendables: 5,
			Orgs: 8, TeamsPerOrg: 20, ExpectationsPerTeamBlueprint: 25,
		},
	}
}
