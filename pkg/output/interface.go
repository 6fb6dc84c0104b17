package output

import (
	"context"
	"io"
)

// Formatter renders batch reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes the raw row text alongside each window.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}

// New returns the formatter for the given format name, or false if the name
// is not recognized.
func New(format string, opts FormatOptions) (Formatter, bool) {
	switch format {
	case "text":
		return NewTextFormatter(opts), true
	case "json":
		return NewJSONFormatter(opts), true
	default:
		return nil, false
	}
}
