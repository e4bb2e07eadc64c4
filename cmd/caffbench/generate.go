// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"math/rand"
	"strings"

	"caffbench/internal/config"
	"caffbench/internal/corpus"
	"caffbench/internal/issue"

	"github.com/spf13/cobra"
)

var (
	generateOut        string
	generateSeed       int64
	generateExpScaling bool

	generateCmd = &cobra.Command{
		Use:   "generate [scale ...]",
		Short: "Generate one or more corpus scales",
		Long: `Generate synthetic caffeine corpora at the requested scales.

With no arguments, all configured scales are generated in order. Each
scale is written under <out-dir>/<scale>/ with a blueprints.caffeine
file, per-team expectation files, and a manifest.toml with size stats.

Generation is deterministic: the same seed and profiles always produce
byte-identical output.`,
		RunE: runGenerate,
	}
)

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output directory (default from config, \"corpus\")")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", corpus.DefaultSeed, "seed for the pseudo-random source")
	generateCmd.Flags().BoolVar(&generateExpScaling, "exp-scaling", false, "also generate the expectation-scaling corpus series")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = generateSeed
	}
	outDir := cfg.OutDir
	if cmd.Flags().Changed("out") {
		outDir = generateOut
	}

	scales := args
	if len(scales) == 0 {
		scales = cfg.ScaleNames()
	}
	for _, scale := range scales {
		if _, ok := cfg.Profiles[scale]; !ok {
			return issue.NewErrorContext().
				WithOperation("resolving scale profile").
				WithResource(scale).
				WithSuggestion(fmt.Sprintf("known scales: %s", strings.Join(cfg.ScaleNames(), ", "))).
				WithSuggestion("add a custom profile under 'profiles' in caffbench.cue").
				Wrap(fmt.Errorf("unknown scale %q", scale)).
				BuildError()
		}
	}

	orch := corpus.NewOrchestrator(rand.New(rand.NewSource(seed)))

	fmt.Println(TitleStyle.Render("Generating corpus") + SubtitleStyle.Render(fmt.Sprintf(" (seed %d, out %s)", seed, outDir)))
	for _, scale := range scales {
		c, err := orch.Generate(scale, cfg.Profiles[scale])
		if err != nil {
			return issue.WrapWithOperation(err, "generating corpus scale "+scale)
		}
		stats, err := corpus.Write(c, outDir)
		if err != nil {
			return issue.WrapWithOperation(err, "writing corpus scale "+scale)
		}
		printStats(stats)
	}

	if generateExpScaling {
		fmt.Println(TitleStyle.Render("Generating expectation-scaling series"))
		corpora, err := orch.GenerateExpectationScaling(corpus.ExpectationScalingTargets)
		if err != nil {
			return issue.WrapWithOperation(err, "generating expectation-scaling series")
		}
		for _, c := range corpora {
			stats, err := corpus.Write(c, outDir)
			if err != nil {
				return issue.WrapWithOperation(err, "writing corpus scale "+c.Scale)
			}
			printStats(stats)
		}
	}

	fmt.Println(SuccessStyle.Render("Done."))
	return nil
}

// printStats prints a one-line summary for a written scale.
func printStats(s *corpus.Stats) {
	fmt.Printf("  %s  %d blueprints (%s), %d expectations in %d files (%s), total %s\n",
		NameStyle.Render(fmt.Sprintf("%-14s", s.Scale)),
		s.Blueprints, humanSize(s.BlueprintSize),
		s.Expectations, s.ExpectationFiles, humanSize(s.ExpectationSize),
		humanSize(s.TotalSize))
}

// humanSize formats a byte count with a binary unit suffix.
func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
