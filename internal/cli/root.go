// Package cli provides the command-line interface for timeslice.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/timeslice/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timeslice",
		Short: "Derive bounded time windows from timestamps",
		Long: `Timeslice turns heterogeneous textual timestamps into canonical UTC
instants and derives bounded time windows for log investigation.

It accepts:
  - ISO-8601 timestamps with any fractional-second precision
  - Unix epoch seconds and milliseconds
  - Simple date-times (YYYY-MM-DD, YYYY/MM/DD, MM/DD/YYYY)

Give it one timestamp for a centered window, two for an explicit range, or
a file of rows for a classified batch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewWindowCommand())
	rootCmd.AddCommand(commands.NewSpanCommand())
	rootCmd.AddCommand(commands.NewBatchCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
