// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"caffbench/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and full error chains
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "caffbench",
		Short: "Deterministic caffeine corpus synthesizer and benchmark comparator",
		Long: TitleStyle.Render("caffbench") + SubtitleStyle.Render(" - Deterministic caffeine corpus synthesizer and benchmark comparator") + `

caffbench generates synthetic-but-realistic corpora of '.caffeine'
configuration files at controlled scales, for benchmarking tools that
parse and evaluate the caffeine language. Given the same seed and
profile, it emits byte-identical output on every run.

It also compares two hyperfine JSON result files and reports
per-benchmark regressions against a mean-time threshold.

` + SubtitleStyle.Render("Examples:") + `
  caffbench generate                    Generate all built-in scales
  caffbench generate small large        Generate selected scales only
  caffbench generate --exp-scaling      Generate the expectation-scaling series
  caffbench compare base.json cur.json  Compare two hyperfine result files
  caffbench stats corpus/               Re-measure an existing corpus
  caffbench profiles                    List resolved scale profiles`,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./caffbench.cue)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profilesCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, formatErrorForDisplay(exitErr.Err, verbose))
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initLogging raises the default logger to debug level in verbose mode.
func initLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
