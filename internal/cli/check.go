package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/spiceraw/internal/check"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Expect string
}

// CheckResult reports expectation checking for one file.
type CheckResult struct {
	Path       string   `json:"path" yaml:"path"`
	Passed     bool     `json:"passed" yaml:"passed"`
	Violations []string `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <file.raw>",
		Short: "Validate a .raw file against a CUE expectation file",
		Long: `Decode a .raw file and check its stats against a CUE expectation file.

The expectation file declares any of: mode, points, variables, steps,
step_size, and a series list of variable names that must be present.
Exits non-zero when any expectation is violated.

Example:
  spiceraw check --expect sweep.cue sweep.raw`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Expect, "expect", "", "path to CUE expectation file (required)")
	_ = cmd.MarkFlagRequired("expect")

	return cmd
}

func runCheck(opts *CheckOptions, path string, cmd *cobra.Command) error {
	sim, err := loadSimulation(path)
	if err != nil {
		return err
	}

	exp, err := check.LoadExpectation(opts.Expect)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("cannot load expectation %s", opts.Expect), err)
	}

	violations := exp.Check(sim)
	result := CheckResult{
		Path:   sim.Path(),
		Passed: len(violations) == 0,
	}
	for _, v := range violations {
		result.Violations = append(result.Violations, v.String())
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := formatter.Emit(result, func(w io.Writer) {
		if result.Passed {
			fmt.Fprintf(w, "PASS %s\n", result.Path)
			return
		}
		fmt.Fprintf(w, "FAIL %s\n", result.Path)
		for _, v := range result.Violations {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}); err != nil {
		return err
	}

	if !result.Passed {
		return NewExitError(ExitFailure, fmt.Sprintf("%d expectation(s) violated", len(violations)))
	}
	return nil
}
