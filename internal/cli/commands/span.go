package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/timeslice/pkg/config"
	"github.com/ccollicutt/timeslice/pkg/timeparse"
	"github.com/ccollicutt/timeslice/pkg/timerange"
)

// SpanOptions holds command-line options for the span command.
type SpanOptions struct {
	Min    int64
	Max    int64
	Output string
}

// NewSpanCommand creates the span command.
func NewSpanCommand() *cobra.Command {
	opts := &SpanOptions{}

	cmd := &cobra.Command{
		Use:   "span <start> <end>",
		Short: "Derive an explicit time range from two timestamps",
		Long: `Parse a start and an end timestamp and validate the range between them.

Duration bounds are enforced: the default 1-3600 seconds suits general
analysis; pass --max 0 to lift the ceiling for a targeted search.

Examples:
  timeslice span 2025-07-26T00:49:16Z 2025-07-26T00:49:21Z
  timeslice span --max 0 1753490956 1756082956`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpan(cmd, args, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.Min, "min", config.DefaultRangeMinSeconds, "Minimum range duration in seconds")
	cmd.Flags().Int64Var(&opts.Max, "max", config.DefaultRangeMaxSeconds, "Maximum range duration in seconds (0 = unbounded)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runSpan(cmd *cobra.Command, args []string, opts *SpanOptions) error {
	if err := validateOutputFormat(opts.Output); err != nil {
		return err
	}

	start, err := timeparse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := timeparse.Parse(args[1])
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}

	tr, err := timerange.ExplicitRange(start, end, timerange.Bounds{Min: opts.Min, Max: opts.Max})
	if err != nil {
		return err
	}

	return printRange(cmd.OutOrStdout(), tr, opts.Output)
}
