package timeparse

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func mustParse(t *testing.T, input string) *ParsedTime {
	t.Helper()
	pt, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	return pt
}

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantEpoch  int64
		wantFormat FormatTag
	}{
		{
			name:       "ISO 8601 UTC",
			input:      "2025-07-26T00:49:16Z",
			wantEpoch:  1753490956,
			wantFormat: FormatISO8601,
		},
		{
			name:       "ISO 8601 with 7-digit fraction",
			input:      "2025-07-26T00:49:16.2146161Z",
			wantEpoch:  1753490956,
			wantFormat: FormatISO8601,
		},
		{
			name:       "ISO 8601 positive offset",
			input:      "2025-07-26T05:49:16+05:00",
			wantEpoch:  1753490956,
			wantFormat: FormatISO8601,
		},
		{
			name:       "ISO 8601 negative offset",
			input:      "2025-07-25T19:49:16-05:00",
			wantEpoch:  1753490956,
			wantFormat: FormatISO8601,
		},
		{
			name:       "ISO 8601 no offset treated as UTC",
			input:      "2025-07-26T00:49:16",
			wantEpoch:  1753490956,
			wantFormat: FormatISO8601,
		},
		{
			name:       "Unix seconds",
			input:      "1753490956",
			wantEpoch:  1753490956,
			wantFormat: FormatUnixSeconds,
		},
		{
			name:       "Unix seconds with decimal part floors",
			input:      "1753490956.999",
			wantEpoch:  1753490956,
			wantFormat: FormatUnixSeconds,
		},
		{
			name:       "Unix milliseconds",
			input:      "1753490956214",
			wantEpoch:  1753490956,
			wantFormat: FormatUnixMillis,
		},
		{
			name:       "dash date-time",
			input:      "2025-07-26 00:49:16",
			wantEpoch:  1753490956,
			wantFormat: FormatDateTime,
		},
		{
			name:       "slash date-time",
			input:      "2025/07/26 00:49:16",
			wantEpoch:  1753490956,
			wantFormat: FormatDateTime,
		},
		{
			name:       "US date-time",
			input:      "07/26/2025 00:49:16",
			wantEpoch:  1753490956,
			wantFormat: FormatDateTime,
		},
		{
			name:       "date-time with fraction floors",
			input:      "2025-07-26 00:49:16.75",
			wantEpoch:  1753490956,
			wantFormat: FormatDateTime,
		},
		{
			name:       "date-time without seconds",
			input:      "2025-07-26 00:49",
			wantEpoch:  1753490940,
			wantFormat: FormatDateTimeNoSeconds,
		},
		{
			name:       "US date-time without seconds",
			input:      "07/26/2025 00:49",
			wantEpoch:  1753490940,
			wantFormat: FormatDateTimeNoSeconds,
		},
		{
			name:       "leading and trailing whitespace",
			input:      "  2025-07-26T00:49:16Z  ",
			wantEpoch:  1753490956,
			wantFormat: FormatISO8601,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got.EpochSeconds != tt.wantEpoch {
				t.Errorf("EpochSeconds = %d, want %d", got.EpochSeconds, tt.wantEpoch)
			}
			if got.Format != tt.wantFormat {
				t.Errorf("Format = %s, want %s", got.Format, tt.wantFormat)
			}
			if got.Original != tt.input {
				t.Errorf("Original = %q, want %q", got.Original, tt.input)
			}
		})
	}
}

func TestParse_OriginalPreservesInputVerbatim(t *testing.T) {
	input := "\t 1753490956 \n"
	got := mustParse(t, input)
	if got.Original != input {
		t.Errorf("Original = %q, want %q", got.Original, input)
	}
}

func TestParse_ExtremeRealWorldOffsets(t *testing.T) {
	// +14:00 (Line Islands) and -12:00 are the edges of the offset range.
	plus := mustParse(t, "2025-07-26T14:49:16+14:00")
	minus := mustParse(t, "2025-07-25T12:49:16-12:00")
	if plus.EpochSeconds != 1753490956 {
		t.Errorf("+14:00 EpochSeconds = %d, want 1753490956", plus.EpochSeconds)
	}
	if minus.EpochSeconds != 1753490956 {
		t.Errorf("-12:00 EpochSeconds = %d, want 1753490956", minus.EpochSeconds)
	}
}

func TestParse_FractionalPrecisionNeverShiftsSeconds(t *testing.T) {
	base := mustParse(t, "2025-07-26T00:49:16Z")

	for digits := 1; digits <= 7; digits++ {
		input := "2025-07-26T00:49:16." + strings.Repeat("9", digits) + "Z"
		got := mustParse(t, input)
		if got.EpochSeconds != base.EpochSeconds {
			t.Errorf("Parse(%q).EpochSeconds = %d, want %d", input, got.EpochSeconds, base.EpochSeconds)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyInput},
		{"whitespace only", "   \t ", ErrEmptyInput},
		{"garbage", "not a timestamp", ErrUnrecognizedFormat},
		{"short numeral below epoch window", "12345", ErrUnrecognizedFormat},
		{"numeral above seconds below millis window", "4102444800", ErrUnrecognizedFormat},
		{"numeral too large for int64", strings.Repeat("9", 25), ErrUnrecognizedFormat},
		{"February 30th", "2025-02-30 12:00:00", ErrSemanticMismatch},
		{"April 31st", "2025-04-31 12:00:00", ErrSemanticMismatch},
		{"leap day in non-leap year", "2025-02-29 12:00:00", ErrSemanticMismatch},
		{"February 30th ISO", "2025-02-30T12:00:00Z", ErrSemanticMismatch},
		{"month 13", "13/45/2025 12:00:00", ErrSemanticMismatch},
		{"hour 24", "2025-07-26 24:00:00", ErrSemanticMismatch},
		{"minute 60", "2025-07-26 12:60:00", ErrSemanticMismatch},
		{"day zero", "2025-07-00 12:00:00", ErrSemanticMismatch},
		{"April 31st without seconds", "2025-04-31 12:00", ErrSemanticMismatch},
		{"offset hours out of range", "2025-07-26T00:49:16+99:99", ErrSemanticMismatch},
		{"offset minutes out of range", "2025-07-26T00:49:16+05:60", ErrSemanticMismatch},
		{"offset beyond fourteen hours", "2025-07-26T00:49:16-14:30", ErrSemanticMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_LeapYears(t *testing.T) {
	for _, year := range []string{"2024", "2020", "2000"} {
		input := year + "-02-29 12:00:00"
		t.Run(input, func(t *testing.T) {
			got := mustParse(t, input)
			want := time.Date(atoi(year), time.February, 29, 12, 0, 0, 0, time.UTC).Unix()
			if got.EpochSeconds != want {
				t.Errorf("EpochSeconds = %d, want %d", got.EpochSeconds, want)
			}
		})
	}
}

func TestParse_UnixRangeBoundaries(t *testing.T) {
	tests := []struct {
		input      string
		wantEpoch  int64
		wantFormat FormatTag
	}{
		{"946684800", 946684800, FormatUnixSeconds},
		{"4102444799", 4102444799, FormatUnixSeconds},
		{"946684800000", 946684800, FormatUnixMillis},
		{"4102444799999", 4102444799, FormatUnixMillis},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if got.EpochSeconds != tt.wantEpoch {
				t.Errorf("EpochSeconds = %d, want %d", got.EpochSeconds, tt.wantEpoch)
			}
			if got.Format != tt.wantFormat {
				t.Errorf("Format = %s, want %s", got.Format, tt.wantFormat)
			}
		})
	}
}

func TestParse_AdversarialInputIsBounded(t *testing.T) {
	// 1000 characters of repeated near-matching tokens must be rejected
	// quickly: no pattern in the cascade can backtrack catastrophically.
	input := strings.Repeat("2025-", 200)

	start := time.Now()
	_, err := Parse(input)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Parse() expected error for adversarial input")
	}
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("Parse() error = %v, want %v", err, ErrUnrecognizedFormat)
	}
	if elapsed > 100*time.Millisecond {
		t.Errorf("Parse() took %s, want under 100ms", elapsed)
	}
}
