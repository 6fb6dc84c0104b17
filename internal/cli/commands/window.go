package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/timeslice/pkg/config"
	"github.com/ccollicutt/timeslice/pkg/timeparse"
	"github.com/ccollicutt/timeslice/pkg/timerange"
)

// WindowOptions holds command-line options for the window command.
type WindowOptions struct {
	Window int64
	Output string
}

// NewWindowCommand creates the window command.
func NewWindowCommand() *cobra.Command {
	opts := &WindowOptions{}

	cmd := &cobra.Command{
		Use:   "window <timestamp>",
		Short: "Derive a centered time window around one timestamp",
		Long: `Parse a single timestamp and derive a window centered on it.

The window is exactly --window seconds wide. The backward half is
floor(window/2); an odd window allocates the extra second forward.

Examples:
  timeslice window 2025-07-26T00:49:16Z
  timeslice window --window 5 1753490956
  timeslice window "07/26/2025 00:49:16"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, args, opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.Window, "window", "w", config.DefaultWindowSeconds, "Window width in seconds")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runWindow(cmd *cobra.Command, args []string, opts *WindowOptions) error {
	if err := validateOutputFormat(opts.Output); err != nil {
		return err
	}

	center, err := timeparse.Parse(args[0])
	if err != nil {
		return err
	}

	tr, err := timerange.CenteredWindow(center, opts.Window)
	if err != nil {
		return err
	}

	return printRange(cmd.OutOrStdout(), tr, opts.Output)
}
