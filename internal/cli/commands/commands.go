// Package commands implements the timeslice subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ccollicutt/timeslice/pkg/timerange"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// rangePayload is the JSON shape for single-range output.
type rangePayload struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	StartEpoch      int64  `json:"start_epoch"`
	EndEpoch        int64  `json:"end_epoch"`
	DurationSeconds int64  `json:"duration_seconds"`
}

// validateOutputFormat rejects unknown --output values before any work
// is done, so a bad flag is reported even when the positional arguments
// are also bad.
func validateOutputFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid output format %q (must be text or json)", format)
	}
	return nil
}

// printRange writes a derived range in plain text or JSON.
func printRange(w io.Writer, tr *timerange.TimeRange, format string) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rangePayload{
			Start:           epochUTC(tr.Start),
			End:             epochUTC(tr.End),
			StartEpoch:      tr.Start,
			EndEpoch:        tr.End,
			DurationSeconds: tr.Duration,
		})
	}

	fmt.Fprintf(w, "Start:    %s (%d)\n", epochUTC(tr.Start), tr.Start)
	fmt.Fprintf(w, "End:      %s (%d)\n", epochUTC(tr.End), tr.End)
	fmt.Fprintf(w, "Duration: %ds\n", tr.Duration)
	return nil
}

func epochUTC(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format(time.RFC3339)
}
