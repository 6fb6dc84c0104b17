package tabular

import (
	"fmt"

	"github.com/ccollicutt/timeslice/pkg/timeparse"
	"github.com/ccollicutt/timeslice/pkg/timerange"
)

// ParseRows parses every row of a batch according to the detected layout.
// Row failures are collected in the result and do not stop remaining rows;
// ParseRows itself fails only on a pre-batch policy error (missing uniform
// window, undetected layout) or when zero rows succeed. In the zero-success
// case the result is still returned alongside ErrNoValidRows so callers can
// render the per-row errors.
func ParseRows(rows []Row, layout LayoutTag, opts RowOptions) (*BatchResult, error) {
	switch layout {
	case LayoutSingleColumnUniform:
		if opts.UniformWindow < 1 {
			return nil, fmt.Errorf("%w: provide a window of at least 1 second", ErrNoUniformWindow)
		}
	case LayoutTimestampPlusDuration, LayoutStartAndEnd:
	default:
		return nil, fmt.Errorf("%w: layout %q cannot be parsed", ErrUnknownLayout, layout)
	}

	result := &BatchResult{
		Outcomes:  make([]RowOutcome, 0, len(rows)),
		TotalRows: len(rows),
	}

	for _, row := range rows {
		outcome := RowOutcome{RowNumber: row.Number, Raw: row.Text}
		outcome.Range, outcome.Err = parseRow(row.Text, layout, opts)
		if outcome.Err != nil {
			outcome.Err = fmt.Errorf("row %d: %w", row.Number, outcome.Err)
			result.ErrorCount++
		} else {
			result.ValidEntries++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if result.TotalRows > 0 && result.ValidEntries == 0 {
		return result, fmt.Errorf("%w: %d rows failed", ErrNoValidRows, result.ErrorCount)
	}
	return result, nil
}

func parseRow(text string, layout LayoutTag, opts RowOptions) (*timerange.TimeRange, error) {
	fields := splitFields(text)

	wantColumns := 2
	if layout == LayoutSingleColumnUniform {
		wantColumns = 1
	}
	if len(fields) != wantColumns {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrColumnCountMismatch, len(fields), wantColumns)
	}

	switch layout {
	case LayoutSingleColumnUniform:
		center, err := timeparse.Parse(fields[0])
		if err != nil {
			return nil, err
		}
		return timerange.CenteredWindow(center, opts.UniformWindow)

	case LayoutTimestampPlusDuration:
		center, err := timeparse.Parse(fields[0])
		if err != nil {
			return nil, err
		}
		window, ok := durationField(fields[1])
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a window width in 1-%d seconds",
				timerange.ErrDurationOutOfBounds, fields[1], maxDurationSeconds)
		}
		return timerange.CenteredWindow(center, window)

	default: // LayoutStartAndEnd
		start, err := timeparse.Parse(fields[0])
		if err != nil {
			return nil, err
		}
		end, err := timeparse.Parse(fields[1])
		if err != nil {
			return nil, err
		}
		return timerange.ExplicitRange(start, end, opts.RangeBounds)
	}
}
