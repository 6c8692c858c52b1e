package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/spiceraw/internal/store"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Database string
}

// ExportResult reports one completed export.
type ExportResult struct {
	RunID    string `json:"run_id" yaml:"run_id"`
	Database string `json:"database" yaml:"database"`
	Points   int    `json:"points" yaml:"points"`
	Steps    int    `json:"steps" yaml:"steps"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <file.raw>",
		Short: "Decode a .raw file and persist it to a SQLite database",
		Long: `Decode a .raw file and store the run, its variables, and every sample
in a SQLite database (creating it if it doesn't exist).

Example:
  spiceraw export --db waves.db sweep.raw`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runExport(opts *ExportOptions, path string, cmd *cobra.Command) error {
	sim, err := loadSimulation(path)
	if err != nil {
		return err
	}

	s, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("cannot open database %s", opts.Database), err)
	}
	defer s.Close()

	runID, err := s.SaveRun(cmd.Context(), sim)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot save run", err)
	}

	stats := sim.Stats()
	result := ExportResult{
		RunID:    runID,
		Database: opts.Database,
		Points:   stats.Points,
		Steps:    stats.Steps,
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Emit(result, func(w io.Writer) {
		fmt.Fprintf(w, "Exported run %s (%d points, %d steps) to %s\n",
			result.RunID, result.Points, result.Steps, result.Database)
	})
}
