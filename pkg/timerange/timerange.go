// Package timerange derives bounded time windows from parsed instants.
package timerange

import (
	"errors"
	"fmt"

	"github.com/ccollicutt/timeslice/pkg/timeparse"
)

// Range construction errors. Callers match these with errors.Is.
var (
	// ErrRangeTooShort is returned when end minus start is below the
	// caller-supplied minimum.
	ErrRangeTooShort = errors.New("time range shorter than minimum")

	// ErrRangeTooLong is returned when end minus start exceeds the
	// caller-supplied maximum.
	ErrRangeTooLong = errors.New("time range longer than maximum")

	// ErrDurationOutOfBounds is returned for window or duration values
	// outside their accepted range.
	ErrDurationOutOfBounds = errors.New("duration out of bounds")
)

// TimeRange is a validated window of epoch seconds.
// Duration is always End - Start and always positive.
type TimeRange struct {
	Start    int64
	End      int64
	Duration int64
}

// Bounds are caller-supplied duration limits for explicit ranges. The
// package has no built-in policy: general analysis and unrestricted search
// callers pass different limits. Max <= 0 means no upper bound.
type Bounds struct {
	Min int64
	Max int64
}

// CenteredWindow builds a range of exactly windowSeconds around a single
// instant. The backward half is floor(window/2); an odd window allocates the
// extra second to the forward side.
func CenteredWindow(center *timeparse.ParsedTime, windowSeconds int64) (*TimeRange, error) {
	if windowSeconds < 1 {
		return nil, fmt.Errorf("%w: window %d must be at least 1 second", ErrDurationOutOfBounds, windowSeconds)
	}

	back := windowSeconds / 2
	return &TimeRange{
		Start:    center.EpochSeconds - back,
		End:      center.EpochSeconds + (windowSeconds - back),
		Duration: windowSeconds,
	}, nil
}

// ExplicitRange builds a range from two instants, enforcing the supplied
// duration bounds.
func ExplicitRange(start, end *timeparse.ParsedTime, bounds Bounds) (*TimeRange, error) {
	duration := end.EpochSeconds - start.EpochSeconds

	// Duration must be positive even when the caller's minimum is zero.
	minimum := bounds.Min
	if minimum < 1 {
		minimum = 1
	}
	if duration < minimum {
		return nil, fmt.Errorf("%w: %d seconds, minimum %d", ErrRangeTooShort, duration, bounds.Min)
	}
	if bounds.Max > 0 && duration > bounds.Max {
		return nil, fmt.Errorf("%w: %d seconds, maximum %d", ErrRangeTooLong, duration, bounds.Max)
	}

	return &TimeRange{
		Start:    start.EpochSeconds,
		End:      end.EpochSeconds,
		Duration: duration,
	}, nil
}
