package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/spiceraw/internal/decoder"
)

// InfoResult is the serializable summary of one decoded file.
type InfoResult struct {
	Path      string `json:"path" yaml:"path"`
	Encoding  string `json:"encoding" yaml:"encoding"`
	Mode      string `json:"mode" yaml:"mode"`
	Flags     string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Date      string `json:"date" yaml:"date"`
	Variables int    `json:"variables" yaml:"variables"`
	Points    int    `json:"points" yaml:"points"`
	Steps     int    `json:"steps" yaml:"steps"`
	StepSize  int    `json:"step_size" yaml:"step_size"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.raw>",
		Short: "Show header metadata and stats for a .raw file",
		Long: `Decode a .raw file and print its header metadata and derived stats.

Example:
  spiceraw info sweep.raw
  spiceraw info --format json sweep.raw`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInfo(opts *RootOptions, path string, cmd *cobra.Command) error {
	sim, err := loadSimulation(path)
	if err != nil {
		return err
	}

	stats := sim.Stats()
	result := InfoResult{
		Path:      sim.Path(),
		Encoding:  sim.Encoding().String(),
		Mode:      sim.Mode().String(),
		Flags:     sim.Flags().String(),
		Date:      sim.Date().Format(time.RFC3339),
		Variables: stats.Variables,
		Points:    stats.Points,
		Steps:     stats.Steps,
		StepSize:  stats.StepSize,
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Emit(result, func(w io.Writer) {
		fmt.Fprintf(w, "Source:    %s\n", result.Path)
		fmt.Fprintf(w, "Encoding:  %s\n", result.Encoding)
		fmt.Fprintf(w, "Mode:      %s\n", result.Mode)
		if result.Flags != "" {
			fmt.Fprintf(w, "Flags:     %s\n", result.Flags)
		}
		fmt.Fprintf(w, "Date:      %s\n", result.Date)
		fmt.Fprintf(w, "Variables: %d\n", result.Variables)
		fmt.Fprintf(w, "Points:    %d\n", result.Points)
		fmt.Fprintf(w, "Steps:     %d (x%d points)\n", result.Steps, result.StepSize)
	})
}

// loadSimulation decodes a .raw file, mapping failures to command errors.
func loadSimulation(path string) (*decoder.Simulation, error) {
	sim := decoder.New(path)
	if err := sim.Reload(); err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot decode %s", path), err)
	}
	return sim, nil
}
