package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dux/internal/dux"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var options dux.Options

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "dux [flags] [pattern]",
		Short: "Summarize disk usage for paths matching a glob pattern",
		Long: heredoc.Doc(`
			dux summarizes disk usage for every path matching a glob pattern.

			Each matched path is walked recursively and printed with its total
			size and entry count, followed by a grand-total footer covering all
			matches. Symlinks are never followed; their own link metadata is
			counted instead.

			The pattern defaults to '*' (entries of the current directory) and
			supports '*', '?', '[...]' and recursive '**'.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				options.Pattern = args[0]
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			return logic(options)
		},
	}

	cmd.Flags().BoolVarP(&options.Reverse, "reverse", "r", false, "Reverse the final ordering")
	cmd.Flags().BoolVarP(&options.Percentages, "percentages", "P", false, "Show each entry's percentage of the total size")
	cmd.Flags().BoolVarP(&options.SortByPath, "path", "p", false, "Sort by path, instead of by size")
	cmd.Flags().Float64VarP(&options.MinPercentage, "min", "m", 0, "Omit entries below this percentage of the total size")
	cmd.Flags().StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")
	cmd.Flags().SortFlags = false

	return cmd.Execute()
}
