package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter renders batch reports as indented JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietReport is the reduced shape emitted in quiet mode: aggregate counts
// plus the detected layout, matching what the text formatter's quiet line
// surfaces.
type quietReport struct {
	Summary Summary `json:"summary"`
	Layout  string  `json:"layout"`
}

// Format renders the batch report. Quiet mode drops the per-row outcomes
// and metadata, keeping only the summary counts and the detected layout.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(quietReport{
			Summary: report.Summary,
			Layout:  report.Layout,
		})
	}

	return encoder.Encode(report)
}
