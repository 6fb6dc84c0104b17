// Package timeparse normalizes textual timestamps into canonical UTC instants.
package timeparse

import "errors"

// FormatTag identifies which recognizer produced a ParsedTime.
type FormatTag string

const (
	FormatISO8601           FormatTag = "iso8601"
	FormatUnixSeconds       FormatTag = "unix_seconds"
	FormatUnixMillis        FormatTag = "unix_millis"
	FormatDateTime          FormatTag = "datetime"
	FormatDateTimeNoSeconds FormatTag = "datetime_no_seconds"
)

// ParsedTime is a successfully normalized timestamp.
// EpochSeconds is the floor of the instant: fractional seconds in the input
// never shift the integer-second result.
type ParsedTime struct {
	// Original is the input string, preserved verbatim.
	Original string

	// EpochSeconds is the canonical UTC instant as Unix seconds.
	EpochSeconds int64

	// Format identifies the recognizer that matched.
	Format FormatTag
}

// Parse errors. Callers match these with errors.Is.
var (
	// ErrEmptyInput is returned when the trimmed input is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnrecognizedFormat is returned when no recognizer matches.
	ErrUnrecognizedFormat = errors.New("unrecognized timestamp format")

	// ErrSemanticMismatch is returned when the input matches a recognizer
	// syntactically but its calendar fields do not survive a round-trip
	// (e.g. 2025-04-31 would silently roll over to May 1st).
	ErrSemanticMismatch = errors.New("timestamp fields do not form a valid calendar date-time")
)
