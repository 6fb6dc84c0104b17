package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/timeslice/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a timeslice configuration file without running a batch.

Checks:
  - YAML syntax
  - Window and range-bound values
  - Output format
  - Webhook endpoint URLs and triggers`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Window:      %ds\n", cfg.Defaults.WindowSeconds)
	if cfg.Defaults.RangeMaxSeconds == 0 {
		fmt.Fprintf(out, "  Range:       %ds minimum, unbounded\n", cfg.Defaults.RangeMinSeconds)
	} else {
		fmt.Fprintf(out, "  Range:       %d-%ds\n", cfg.Defaults.RangeMinSeconds, cfg.Defaults.RangeMaxSeconds)
	}
	fmt.Fprintf(out, "  Output:      %s\n", cfg.Output.Format)

	if len(cfg.Webhooks) > 0 {
		fmt.Fprintf(out, "\nWebhooks:\n")
		for i, hook := range cfg.Webhooks {
			name := hook.Name
			if name == "" {
				name = hook.URL
			}
			fmt.Fprintf(out, "  %d. %s (%s, %s)\n", i+1, name, hook.Trigger, hook.Timeout)
		}
	}

	return nil
}
