package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// VarsResult lists the dependent variables of one decoded file.
type VarsResult struct {
	Path      string      `json:"path" yaml:"path"`
	Variables []VarResult `json:"variables" yaml:"variables"`
}

// VarResult is one declared variable.
type VarResult struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Class string `json:"class" yaml:"class"`
}

// NewVarsCommand creates the vars command.
func NewVarsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vars <file.raw>",
		Short: "List the variables declared in a .raw file",
		Long: `Decode a .raw file and list its dependent variables in declaration order.

Example:
  spiceraw vars sweep.raw`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVars(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runVars(opts *RootOptions, path string, cmd *cobra.Command) error {
	sim, err := loadSimulation(path)
	if err != nil {
		return err
	}

	result := VarsResult{Path: sim.Path()}
	for i, v := range sim.Variables() {
		result.Variables = append(result.Variables, VarResult{
			Index: i + 1, // index 0 is the independent variable
			Name:  v.Name,
			Class: v.Class.String(),
		})
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Emit(result, func(w io.Writer) {
		for _, v := range result.Variables {
			fmt.Fprintf(w, "%d\t%s\t%s\n", v.Index, v.Name, v.Class)
		}
	})
}
