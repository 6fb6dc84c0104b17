package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/timeslice/pkg/config"
	"github.com/ccollicutt/timeslice/pkg/output"
	"github.com/ccollicutt/timeslice/pkg/tabular"
	"github.com/ccollicutt/timeslice/pkg/timerange"
	"github.com/ccollicutt/timeslice/pkg/webhook"
)

// BatchOptions holds command-line options for the batch command.
type BatchOptions struct {
	ConfigPath string
	Output     string
	Window     int64
	Verbose    bool
	Quiet      bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	opts := &BatchOptions{}

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Derive time windows from a file of rows",
		Long: `Read rows of timestamps, detect the row layout, and derive a time
window per row. Use "-" to read from stdin.

Accepted layouts (detected from the first rows, all rows must agree):
  <timestamp>              one window of uniform width per row (--window)
  <timestamp>,<seconds>    a window of the given width (1-3600 seconds)
  <timestamp>,<timestamp>  an explicit start and end

Blank lines and #-prefixed comments are ignored; row numbers in errors
refer to the original file.

Exit codes:
  0 - All rows parsed
  1 - Some rows failed
  2 - No usable rows, or configuration/runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().Int64VarP(&opts.Window, "window", "w", 0, "Uniform window width in seconds for single-column input")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show raw rows alongside derived windows")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "always", "When to fire webhook (always|on_errors|never)")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string, opts *BatchOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}

	rows, source, err := readBatchInput(args[0])
	if err != nil {
		return err
	}

	layout, err := tabular.DetectLayout(rows)
	if err != nil {
		return err
	}

	window := opts.Window
	if window == 0 && layout == tabular.LayoutSingleColumnUniform {
		window = cfg.Defaults.WindowSeconds
	}

	result, parseErr := tabular.ParseRows(rows, layout, tabular.RowOptions{
		UniformWindow: window,
		RangeBounds: timerange.Bounds{
			Min: cfg.Defaults.RangeMinSeconds,
			Max: cfg.Defaults.RangeMaxSeconds,
		},
	})
	if parseErr != nil && !errors.Is(parseErr, tabular.ErrNoValidRows) {
		return parseErr
	}

	report := output.NewReport(result, layout, source)

	format := opts.Output
	if format == "" {
		format = cfg.Output.Format
	}
	formatter, ok := output.New(format, output.FormatOptions{Verbose: opts.Verbose, Quiet: opts.Quiet})
	if !ok {
		return fmt.Errorf("invalid output format %q (must be text or json)", format)
	}
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	sendWebhooks(ctx, cmd.ErrOrStderr(), cfg, opts, report)

	// A batch with zero successful rows is a hard failure even after the
	// report is rendered.
	if parseErr != nil {
		return parseErr
	}

	if report.HasErrors() {
		ExitCode = 1
	}
	return nil
}

func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func readBatchInput(path string) ([]tabular.Row, string, error) {
	var r io.Reader
	source := path

	if path == "-" {
		r = os.Stdin
		source = "stdin"
	} else {
		f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return nil, "", fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		r = f
	}

	rows, err := tabular.ReadRows(r)
	if err != nil {
		return nil, "", err
	}
	return rows, source, nil
}

// sendWebhooks delivers the report to configured endpoints. Delivery
// failures are warnings, not batch failures.
func sendWebhooks(ctx context.Context, errW io.Writer, cfg *config.Config, opts *BatchOptions, report *output.Report) {
	hooks := cfg.Webhooks
	if opts.WebhookURL != "" {
		hooks = append(hooks, config.WebhookConfig{
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: config.WebhookTrigger(opts.WebhookTrigger),
		})
	}
	if len(hooks) == 0 {
		return
	}

	client := webhook.NewClient()
	for _, hook := range hooks {
		if !webhook.ShouldSend(hook.Trigger, report) {
			continue
		}
		resp := client.Send(ctx, report, hook)
		name := hook.Name
		if name == "" {
			name = hook.URL
		}
		if !resp.Success() {
			fmt.Fprintf(errW, "Warning: webhook %s failed: %v\n", name, resp.Error)
		}
	}
}
