package timerange

import (
	"errors"
	"testing"

	"github.com/ccollicutt/timeslice/pkg/timeparse"
)

func instant(epoch int64) *timeparse.ParsedTime {
	return &timeparse.ParsedTime{EpochSeconds: epoch, Format: timeparse.FormatUnixSeconds}
}

func TestCenteredWindow(t *testing.T) {
	tests := []struct {
		name      string
		center    int64
		window    int64
		wantStart int64
		wantEnd   int64
	}{
		{
			name:      "odd window favors forward side",
			center:    1753490956,
			window:    5,
			wantStart: 1753490954,
			wantEnd:   1753490959,
		},
		{
			name:      "even window splits evenly",
			center:    1753490956,
			window:    10,
			wantStart: 1753490951,
			wantEnd:   1753490961,
		},
		{
			name:      "one-second window is entirely forward",
			center:    1753490956,
			window:    1,
			wantStart: 1753490956,
			wantEnd:   1753490957,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CenteredWindow(instant(tt.center), tt.window)
			if err != nil {
				t.Fatalf("CenteredWindow() error = %v", err)
			}
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("CenteredWindow() = [%d, %d], want [%d, %d]",
					got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
			if got.Duration != tt.window {
				t.Errorf("Duration = %d, want %d", got.Duration, tt.window)
			}
			if got.End-got.Start != tt.window {
				t.Errorf("End - Start = %d, want %d", got.End-got.Start, tt.window)
			}
		})
	}
}

func TestCenteredWindow_FromParsedTimestamp(t *testing.T) {
	pt, err := timeparse.Parse("2025-07-26T00:49:16Z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := CenteredWindow(pt, 5)
	if err != nil {
		t.Fatalf("CenteredWindow() error = %v", err)
	}
	if got.Start != 1753490954 || got.End != 1753490959 {
		t.Errorf("CenteredWindow() = [%d, %d], want [1753490954, 1753490959]", got.Start, got.End)
	}
}

func TestCenteredWindow_RejectsNonPositiveWindow(t *testing.T) {
	for _, window := range []int64{0, -5} {
		_, err := CenteredWindow(instant(1753490956), window)
		if !errors.Is(err, ErrDurationOutOfBounds) {
			t.Errorf("CenteredWindow(window=%d) error = %v, want %v", window, err, ErrDurationOutOfBounds)
		}
	}
}

func TestExplicitRange(t *testing.T) {
	bounds := Bounds{Min: 1, Max: 3600}

	tests := []struct {
		name    string
		start   int64
		end     int64
		bounds  Bounds
		wantErr error
	}{
		{
			name:   "valid range",
			start:  1753490956,
			end:    1753490961,
			bounds: bounds,
		},
		{
			name:    "equal instants too short",
			start:   1753490956,
			end:     1753490956,
			bounds:  bounds,
			wantErr: ErrRangeTooShort,
		},
		{
			name:    "end before start too short",
			start:   1753490961,
			end:     1753490956,
			bounds:  bounds,
			wantErr: ErrRangeTooShort,
		},
		{
			name:    "exceeds maximum",
			start:   1753490956,
			end:     1753490956 + 3601,
			bounds:  bounds,
			wantErr: ErrRangeTooLong,
		},
		{
			name:   "exactly at maximum",
			start:  1753490956,
			end:    1753490956 + 3600,
			bounds: bounds,
		},
		{
			name:   "unbounded maximum allows long ranges",
			start:  1753490956,
			end:    1753490956 + 86400*30,
			bounds: Bounds{Min: 1},
		},
		{
			name:    "zero minimum still requires positive duration",
			start:   1753490956,
			end:     1753490956,
			bounds:  Bounds{Min: 0, Max: 3600},
			wantErr: ErrRangeTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExplicitRange(instant(tt.start), instant(tt.end), tt.bounds)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ExplicitRange() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExplicitRange() error = %v", err)
			}
			if got.Start != tt.start || got.End != tt.end {
				t.Errorf("ExplicitRange() = [%d, %d], want [%d, %d]", got.Start, got.End, tt.start, tt.end)
			}
			if got.Duration != tt.end-tt.start {
				t.Errorf("Duration = %d, want %d", got.Duration, tt.end-tt.start)
			}
		})
	}
}
