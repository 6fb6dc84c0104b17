package tabular

import (
	"fmt"
	"strconv"
)

// sampleSize is how many leading rows the detector inspects. Layout is a
// sampling heuristic: later rows are not re-classified, but every row is
// still column-count-checked at parse time, so a divergent tail surfaces as
// row errors rather than silent misreads.
const sampleSize = 3

// maxDurationSeconds is the upper bound for a duration column. A second
// column above it is assumed to be a second timestamp, not a window width.
const maxDurationSeconds = 3600

// layoutGuide describes the accepted layouts in batch-rejection messages.
const layoutGuide = "rows must be one of: " +
	"\"<timestamp>\" (single column, uniform window), " +
	"\"<timestamp>,<seconds>\" (window width 1-3600), or " +
	"\"<timestamp>,<timestamp>\" (explicit start and end)"

// DetectLayout classifies the row layout of a batch from its leading rows.
// All sampled rows must agree: disagreement is a hard failure, returned as
// LayoutMixed (recognizable but conflicting candidates) or LayoutUnknown.
func DetectLayout(rows []Row) (LayoutTag, error) {
	if len(rows) == 0 {
		return LayoutUnknown, fmt.Errorf("%w: input has no rows", ErrUnknownLayout)
	}

	sample := rows
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	layout := classifyRow(sample[0].Text)
	for _, row := range sample[1:] {
		candidate := classifyRow(row.Text)
		if candidate == layout {
			continue
		}
		if candidate == LayoutUnknown || layout == LayoutUnknown {
			return LayoutUnknown, fmt.Errorf("%w: %s", ErrUnknownLayout, layoutGuide)
		}
		layout = LayoutMixed
	}

	switch layout {
	case LayoutMixed:
		return LayoutMixed, fmt.Errorf("%w: %s", ErrMixedLayout, layoutGuide)
	case LayoutUnknown:
		return LayoutUnknown, fmt.Errorf("%w: %s", ErrUnknownLayout, layoutGuide)
	}
	return layout, nil
}

// classifyRow assigns a layout candidate to a single row by column count.
// A two-column row whose second column is a plausible window width in
// seconds is a duration row; otherwise the second column is assumed to be a
// timestamp, deferred to parse time.
func classifyRow(text string) LayoutTag {
	switch fields := splitFields(text); len(fields) {
	case 1:
		return LayoutSingleColumnUniform
	case 2:
		if _, ok := durationField(fields[1]); ok {
			return LayoutTimestampPlusDuration
		}
		return LayoutStartAndEnd
	default:
		return LayoutUnknown
	}
}

// durationField reports whether a field is a pure numeral naming a window
// width in (0, 3600] seconds.
func durationField(field string) (int64, bool) {
	if field == "" {
		return 0, false
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil || v < 1 || v > maxDurationSeconds {
		return 0, false
	}
	return v, true
}
