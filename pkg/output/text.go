package output

import (
	"context"
	"fmt"
	"io"
	"time"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "timeslice: %d rows, %d valid, %d errors\n",
		report.Summary.TotalRows,
		report.Summary.ValidEntries,
		report.Summary.ErrorCount)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Layout: %s\n", report.Layout)
	fmt.Fprintln(w)

	for _, row := range report.Rows {
		if row.Error != "" {
			continue
		}
		fmt.Fprintf(w, "  row %d: %s -> %s (%ds)\n",
			row.RowNumber, epochUTC(row.Start), epochUTC(row.End), row.Duration)
		if f.opts.Verbose {
			fmt.Fprintf(w, "         %s\n", row.Raw)
		}
	}

	if report.HasErrors() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", report.Summary.ErrorCount)
		f.formatErrors(report, w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d rows, %d valid, %d errors\n",
		report.Summary.TotalRows,
		report.Summary.ValidEntries,
		report.Summary.ErrorCount)

	return nil
}

// formatErrors shows the first MaxShownErrors row errors verbatim and
// summarizes the rest by count.
func (f *TextFormatter) formatErrors(report *Report, w io.Writer) {
	shown := 0
	for _, row := range report.Rows {
		if row.Error == "" {
			continue
		}
		if shown == MaxShownErrors {
			fmt.Fprintf(w, "  ... and %d more error(s)\n", report.Summary.ErrorCount-shown)
			return
		}
		fmt.Fprintf(w, "  - %s\n", row.Error)
		shown++
	}
}

func epochUTC(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format(time.RFC3339)
}
