// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"caffbench/internal/benchcmp"
	"caffbench/internal/config"
	"caffbench/internal/issue"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	compareThreshold float64
	compareFormat    string

	compareCmd = &cobra.Command{
		Use:   "compare <baseline.json> <current.json>",
		Short: "Compare two hyperfine result files for regressions",
		Long: `Compare two hyperfine JSON result files by mean run time.

Benchmarks are matched by command string. A benchmark regresses when
its current mean exceeds the baseline mean by more than the threshold
percentage. Benchmarks present on only one side are reported as new or
removed and never fail the comparison.

Exit codes:
  0  no regressions
  1  at least one regression (report is still printed)
  2  a result file is missing or malformed`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}
)

func init() {
	compareCmd.Flags().Float64Var(&compareThreshold, "threshold", 10.0, "regression threshold in percent")
	compareCmd.Flags().StringVar(&compareFormat, "format", "text", "report format: text or markdown")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	threshold := cfg.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = compareThreshold
	}

	baseline, err := benchcmp.LoadResults(args[0])
	if err != nil {
		return &ExitError{Code: 2, Err: issue.WrapWithOperation(err, "loading baseline results")}
	}
	current, err := benchcmp.LoadResults(args[1])
	if err != nil {
		return &ExitError{Code: 2, Err: issue.WrapWithOperation(err, "loading current results")}
	}

	report := benchcmp.Compare(baseline, current, threshold)

	switch compareFormat {
	case "text":
		fmt.Print(report.Render())
	case "markdown":
		out, err := renderMarkdown(report.Markdown())
		if err != nil {
			// The plain markdown is still a valid report.
			out = report.Markdown()
		}
		fmt.Print(out)
	default:
		return issue.NewErrorContext().
			WithOperation("rendering comparison report").
			WithSuggestion("use --format text or --format markdown").
			Wrap(fmt.Errorf("unknown format %q", compareFormat)).
			BuildError()
	}

	if !report.Passed() {
		// The report itself is the diagnostic; signal the failure via
		// the exit code only.
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Regression detected."))
		return &ExitError{Code: 1}
	}
	return nil
}

// renderMarkdown renders a markdown report for the terminal using glamour.
func renderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
