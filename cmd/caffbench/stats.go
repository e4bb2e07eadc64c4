// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"caffbench/internal/corpus"
	"caffbench/internal/issue"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <corpus-dir>",
	Short: "Re-measure the scales of an existing corpus",
	Long: `Walk an existing corpus directory and print size statistics for each
scale found in it. Only directories containing a blueprints.caffeine
file are considered scales.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	root := args[0]
	entries, err := os.ReadDir(root)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("reading corpus directory").
			WithResource(root).
			WithSuggestion("run 'caffbench generate' first").
			Wrap(err).
			BuildError()
	}

	var scales []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		bp := filepath.Join(root, e.Name(), corpus.BlueprintFileName)
		if _, err := os.Stat(bp); err == nil {
			scales = append(scales, e.Name())
		}
	}
	sort.Strings(scales)
	if len(scales) == 0 {
		return issue.NewErrorContext().
			WithOperation("locating corpus scales").
			WithResource(root).
			WithSuggestion("run 'caffbench generate' first").
			Wrap(fmt.Errorf("no scale directories found")).
			BuildError()
	}

	fmt.Println(TitleStyle.Render("Corpus stats") + SubtitleStyle.Render(" "+root))
	for _, scale := range scales {
		stats, err := corpus.Measure(filepath.Join(root, scale))
		if err != nil {
			return issue.WrapWithOperation(err, "measuring scale "+scale)
		}
		fmt.Printf("  %s  blueprint file %s, %d expectation files (%s), total %s\n",
			NameStyle.Render(fmt.Sprintf("%-14s", stats.Scale)),
			humanSize(stats.BlueprintSize),
			stats.ExpectationFiles, humanSize(stats.ExpectationSize),
			humanSize(stats.TotalSize))
	}
	return nil
}
