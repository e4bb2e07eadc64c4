// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"caffbench/internal/config"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the resolved scale profiles",
	Long: `Print every scale profile after merging the built-in defaults with
the configuration file. This is what 'caffbench generate' will use.`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render("Scale profiles") + SubtitleStyle.Render(fmt.Sprintf(" (seed %d, out %s)", cfg.Seed, cfg.OutDir)))
	for _, name := range cfg.ScaleNames() {
		p := cfg.Profiles[name]
		fmt.Printf("  %s  %d blueprints (%s), %d aliases, %d+%d extendables, %d orgs x %d teams, %d expectations/team/blueprint\n",
			NameStyle.Render(fmt.Sprintf("%-14s", name)),
			p.Blueprints, p.Complexity,
			p.Aliases,
			p.RequiresExtendables, p.ProvidesExtendables,
			p.Orgs, p.TeamsPerOrg,
			p.ExpectationsPerTeamBlueprint)
	}
	return nil
}
