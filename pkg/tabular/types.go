// Package tabular classifies and parses multi-row timestamp input.
package tabular

import (
	"errors"

	"github.com/ccollicutt/timeslice/pkg/timerange"
)

// LayoutTag identifies the row layout of a batch, determined once per input
// from a bounded leading sample.
type LayoutTag string

const (
	// LayoutSingleColumnUniform: one timestamp per row, windowed by a
	// caller-supplied uniform width.
	LayoutSingleColumnUniform LayoutTag = "single_column_uniform"

	// LayoutTimestampPlusDuration: timestamp plus a window width in seconds.
	LayoutTimestampPlusDuration LayoutTag = "timestamp_plus_duration"

	// LayoutStartAndEnd: explicit start and end timestamps.
	LayoutStartAndEnd LayoutTag = "start_and_end"

	// LayoutMixed: sampled rows disagree on layout. Hard failure.
	LayoutMixed LayoutTag = "mixed"

	// LayoutUnknown: no recognizable layout. Hard failure.
	LayoutUnknown LayoutTag = "unknown"
)

// Batch and row errors. Callers match these with errors.Is.
var (
	// ErrUnknownLayout is returned when sampled rows have no recognizable
	// column layout.
	ErrUnknownLayout = errors.New("unknown row layout")

	// ErrMixedLayout is returned when sampled rows disagree on layout.
	ErrMixedLayout = errors.New("mixed row layouts")

	// ErrColumnCountMismatch is a per-row error for rows whose column count
	// does not match the detected layout.
	ErrColumnCountMismatch = errors.New("unexpected column count")

	// ErrNoUniformWindow is a pre-batch error: single-column input requires
	// a caller-supplied uniform window.
	ErrNoUniformWindow = errors.New("single-column input requires a uniform window")

	// ErrNoValidRows is returned when every row in a batch failed.
	ErrNoValidRows = errors.New("no rows parsed successfully")
)

// Row is one non-empty, non-comment input line with its original 1-based
// line number preserved.
type Row struct {
	Number int
	Text   string
}

// RowOutcome pairs a row with either a derived time range or the error that
// rejected it.
type RowOutcome struct {
	RowNumber int
	Raw       string
	Range     *timerange.TimeRange
	Err       error
}

// BatchResult collects per-row outcomes and aggregate counts for a batch.
type BatchResult struct {
	Outcomes     []RowOutcome
	TotalRows    int
	ValidEntries int
	ErrorCount   int
}

// RowOptions carries the caller-supplied policy for a batch: the uniform
// window for single-column input and the duration bounds for explicit
// start/end rows.
type RowOptions struct {
	UniformWindow int64
	RangeBounds   timerange.Bounds
}
