// Package output provides formatting and output generation for batch reports.
package output

import (
	"time"

	"github.com/ccollicutt/timeslice/pkg/tabular"
)

// MaxShownErrors is how many row errors the text formatter shows verbatim
// before summarizing the remainder by count.
const MaxShownErrors = 5

// Report is the complete batch output.
type Report struct {
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Layout is the detected row layout.
	Layout string `json:"layout"`

	// Rows contains the per-row outcomes in input order.
	Rows []RowResult `json:"rows"`

	// Metadata provides context about the batch.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate counts.
type Summary struct {
	TotalRows    int `json:"total_rows"`
	ValidEntries int `json:"valid_entries"`
	ErrorCount   int `json:"error_count"`
}

// RowResult is one row's outcome: a derived window or an error message.
type RowResult struct {
	RowNumber int    `json:"row"`
	Raw       string `json:"raw"`
	Start     int64  `json:"start_epoch,omitempty"`
	End       int64  `json:"end_epoch,omitempty"`
	Duration  int64  `json:"duration_seconds,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Metadata provides context about the batch run.
type Metadata struct {
	// Source is the batch input path ("-" for stdin).
	Source string `json:"source"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport creates a Report from a parsed batch.
func NewReport(batch *tabular.BatchResult, layout tabular.LayoutTag, source string) *Report {
	report := &Report{
		Summary: Summary{
			TotalRows:    batch.TotalRows,
			ValidEntries: batch.ValidEntries,
			ErrorCount:   batch.ErrorCount,
		},
		Layout: string(layout),
		Rows:   make([]RowResult, 0, len(batch.Outcomes)),
		Metadata: Metadata{
			Source:      source,
			GeneratedAt: time.Now().UTC(),
		},
	}

	for _, outcome := range batch.Outcomes {
		row := RowResult{
			RowNumber: outcome.RowNumber,
			Raw:       outcome.Raw,
		}
		if outcome.Err != nil {
			row.Error = outcome.Err.Error()
		} else {
			row.Start = outcome.Range.Start
			row.End = outcome.Range.End
			row.Duration = outcome.Range.Duration
		}
		report.Rows = append(report.Rows, row)
	}

	return report
}

// HasErrors returns true if any row failed.
func (r *Report) HasErrors() bool {
	return r.Summary.ErrorCount > 0
}
