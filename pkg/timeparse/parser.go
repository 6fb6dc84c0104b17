package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// errNotThisFormat signals that a recognizer matched syntactically but the
// value belongs to a different format (e.g. a numeral outside the Unix-seconds
// range). The cascade moves on to the next recognizer.
var errNotThisFormat = errors.New("value outside recognizer range")

// Unix numeral acceptance windows (year 2000 to 2100). Bare numerals outside
// these windows are not treated as epoch values, which disambiguates them
// from short arbitrary numbers.
const (
	minUnixSeconds = 946684800
	maxUnixSeconds = 4102444800
	minUnixMillis  = minUnixSeconds * 1000
	maxUnixMillis  = maxUnixSeconds * 1000
)

// recognizer pairs an anchored pattern with a conversion function. Each is
// tried independently against the trimmed input, in declaration order.
// Patterns are anchored and avoid nested quantifiers over shared character
// classes, so match or rejection completes in time linear in the input.
type recognizer struct {
	tag     FormatTag
	pattern *regexp.Regexp
	convert func(m []string) (int64, error)
}

var (
	// Fractional seconds are matched but not captured: epoch seconds are
	// always the floor of the instant.
	iso8601Pattern = regexp.MustCompile(
		`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(?:\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)

	bareNumeralPattern = regexp.MustCompile(`^(\d+)(?:\.\d+)?$`)

	// Three date shapes share the time-of-day tail. MM/DD/YYYY is
	// distinguished from YYYY/MM/DD by the position of the 4-digit year.
	dateTimePattern = regexp.MustCompile(
		`^(?:(\d{4})-(\d{2})-(\d{2})|(\d{4})/(\d{2})/(\d{2})|(\d{2})/(\d{2})/(\d{4})) (\d{2}):(\d{2}):(\d{2})(?:\.\d+)?$`)

	dateHourMinutePattern = regexp.MustCompile(
		`^(?:(\d{4})-(\d{2})-(\d{2})|(\d{4})/(\d{2})/(\d{2})|(\d{2})/(\d{2})/(\d{4})) (\d{2}):(\d{2})$`)
)

// recognizers is the full cascade, in priority order.
var recognizers = []recognizer{
	{FormatISO8601, iso8601Pattern, convertISO8601},
	{FormatUnixSeconds, bareNumeralPattern, convertUnixSeconds},
	{FormatUnixMillis, bareNumeralPattern, convertUnixMillis},
	{FormatDateTime, dateTimePattern, convertDateTime},
	{FormatDateTimeNoSeconds, dateHourMinutePattern, convertDateHourMinute},
}

// Parse normalizes a textual timestamp into a canonical UTC instant.
//
// Recognized forms, tried in order: ISO-8601 (any fractional precision,
// optional Z or numeric offset), Unix epoch seconds, Unix epoch milliseconds,
// and simple date-times in YYYY-MM-DD, YYYY/MM/DD, or MM/DD/YYYY shape with
// or without a seconds field. Timestamps without an explicit offset are
// interpreted as UTC.
func Parse(input string) (*ParsedTime, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	for _, rec := range recognizers {
		m := rec.pattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}

		epoch, err := rec.convert(m)
		if errors.Is(err, errNotThisFormat) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", trimmed, err)
		}

		return &ParsedTime{
			Original:     input,
			EpochSeconds: epoch,
			Format:       rec.tag,
		}, nil
	}

	return nil, fmt.Errorf("parsing %q: %w", trimmed, ErrUnrecognizedFormat)
}

func convertISO8601(m []string) (int64, error) {
	offset, err := offsetSeconds(m[7])
	if err != nil {
		return 0, err
	}
	return calendarEpoch(
		atoi(m[1]), atoi(m[2]), atoi(m[3]),
		atoi(m[4]), atoi(m[5]), atoi(m[6]),
		offset)
}

func convertUnixSeconds(m []string) (int64, error) {
	v, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || v < minUnixSeconds || v >= maxUnixSeconds {
		return 0, errNotThisFormat
	}
	return v, nil
}

func convertUnixMillis(m []string) (int64, error) {
	v, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || v < minUnixMillis || v >= maxUnixMillis {
		return 0, errNotThisFormat
	}
	return v / 1000, nil
}

func convertDateTime(m []string) (int64, error) {
	year, month, day := dateFields(m)
	return calendarEpoch(year, month, day, atoi(m[10]), atoi(m[11]), atoi(m[12]), 0)
}

func convertDateHourMinute(m []string) (int64, error) {
	year, month, day := dateFields(m)
	return calendarEpoch(year, month, day, atoi(m[10]), atoi(m[11]), 0, 0)
}

// dateFields extracts year/month/day from whichever of the three date
// alternatives matched (groups 1-3, 4-6, or 7-9).
func dateFields(m []string) (year, month, day int) {
	switch {
	case m[1] != "":
		return atoi(m[1]), atoi(m[2]), atoi(m[3])
	case m[4] != "":
		return atoi(m[4]), atoi(m[5]), atoi(m[6])
	default:
		return atoi(m[9]), atoi(m[7]), atoi(m[8])
	}
}

// calendarEpoch converts explicit calendar fields to epoch seconds. The
// constructed time is compared field-by-field against the inputs so that
// values a permissive constructor would roll over (April 31st becoming
// May 1st) are rejected instead of silently corrected.
func calendarEpoch(year, month, day, hour, minute, second, offsetSec int) (int64, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return 0, ErrSemanticMismatch
	}

	loc := time.UTC
	if offsetSec != 0 {
		loc = time.FixedZone("", offsetSec)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return 0, ErrSemanticMismatch
	}

	return t.Unix(), nil
}

// offsetSeconds converts a matched zone suffix ("", "Z", or ±HH:MM) to a
// fixed offset in seconds. A missing suffix means UTC. Offsets beyond the
// real-world ±14:00 range do not name a zone and are rejected.
func offsetSeconds(suffix string) (int, error) {
	if suffix == "" || suffix == "Z" {
		return 0, nil
	}
	hours := atoi(suffix[1:3])
	minutes := atoi(suffix[4:6])
	if minutes > 59 || hours > 14 || (hours == 14 && minutes > 0) {
		return 0, ErrSemanticMismatch
	}
	off := hours*3600 + minutes*60
	if suffix[0] == '-' {
		return -off, nil
	}
	return off, nil
}

// atoi converts a fixed-width digit capture. Inputs come from \d{n} groups,
// so conversion cannot fail.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
