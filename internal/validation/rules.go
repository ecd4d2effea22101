// Package validation holds the pure field predicates and entity schemas of
// the business layer. Nothing here touches the database; cross-record checks
// live in shared/lookup.
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

const (
	minShift    = 1 * time.Hour
	maxShift    = 12 * time.Hour
	maxStartAge = 7 * 24 * time.Hour
)

type CharClass int

const (
	LettersAndSpaces CharClass = iota
	DigitsOnly
	AlnumAndSpaces
)

// A value is invalid as soon as it contains a single character outside its
// class, so the patterns match the violations, not the class itself.
var charClassViolations = map[CharClass]*regexp.Regexp{
	LettersAndSpaces: regexp.MustCompile(`[^a-zA-Z ]`),
	DigitsOnly:       regexp.MustCompile(`[^0-9]`),
	AlnumAndSpaces:   regexp.MustCompile(`[^a-zA-Z0-9 ]`),
}

// Pattern checks are shape-only: 2024-13-40 passes here and is rejected by
// the semantic predicates below.
var (
	datePattern      = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)
)

// IsEmpty reports whether the value's string form is blank after trimming.
func IsEmpty(v any) bool {
	return strings.TrimSpace(Stringify(v)) == ""
}

// IsPositive reports whether the value is a number strictly greater than zero.
func IsPositive(v any) bool {
	n, ok := NumberValue(v)
	return ok && n > 0
}

// ViolatesCharClass reports whether the value contains any character outside
// the given class.
func ViolatesCharClass(class CharClass, v any) bool {
	return charClassViolations[class].MatchString(Stringify(v))
}

// MatchesDatePattern reports whether the value looks like YYYY-MM-DD.
func MatchesDatePattern(v any) bool {
	return datePattern.MatchString(Stringify(v))
}

// MatchesTimestampPattern reports whether the value looks like
// YYYY-MM-DD HH:MM:SS.
func MatchesTimestampPattern(v any) bool {
	return timestampPattern.MatchString(Stringify(v))
}

// IsHireDateValid accepts dates that are today or in the past and fall on a
// weekday. Well-formatted but impossible dates fail here, not at the format
// check.
func IsHireDateValid(date string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), now.Location())
	if err != nil {
		return false
	}
	if strings.TrimSpace(date) != now.Format(DateLayout) && !d.Before(now) {
		return false
	}
	return isWeekday(d)
}

// IsShiftValid enforces the timecard temporal rules: the shift started at or
// before now, within the last 7 days, lasted between 1 and 12 hours
// inclusive, and both endpoints sit inside the business window.
func IsShiftValid(start, end string, now time.Time) bool {
	s, err := ParseTimestamp(start, now.Location())
	if err != nil {
		return false
	}
	e, err := ParseTimestamp(end, now.Location())
	if err != nil {
		return false
	}

	if s.After(now) {
		return false
	}
	if now.Sub(s) > maxStartAge {
		return false
	}

	shift := e.Sub(s)
	if shift < minShift || shift > maxShift {
		return false
	}

	return IsWithinBusinessWindow(s) && IsWithinBusinessWindow(e)
}

// IsWithinBusinessWindow reports whether the instant is on a weekday between
// 06:00:00 and 18:00:00. The window closes at exactly 18:00:00, never later.
func IsWithinBusinessWindow(t time.Time) bool {
	if !isWeekday(t) {
		return false
	}
	if t.Hour() == 18 {
		return t.Minute() == 0 && t.Second() == 0
	}
	return t.Hour() >= 6 && t.Hour() < 18
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// ParseTimestamp parses a YYYY-MM-DD HH:MM:SS string in the given location.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, strings.TrimSpace(s), loc)
}

// DatePart returns the calendar-date portion of a timestamp string. Time-slot
// uniqueness is compared at this granularity.
func DatePart(s string) string {
	return strings.SplitN(strings.TrimSpace(s), " ", 2)[0]
}

// Stringify renders a JSON-decoded value the way it appeared on the wire:
// whole numbers without a trailing ".0".
func Stringify(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case json.Number:
		return n.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// NumberValue coerces numeric values and numeric-looking strings, mirroring
// how callers of the record store normalize ids before comparisons.
func NumberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// SameValue compares two store/wire values. Strings compare exactly;
// anything numeric on either side compares after normalization, so an int64
// scanned from the database equals the float64 the JSON decoder produced.
func SameValue(a, b any) bool {
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}

	af, aOK := NumberValue(a)
	bf, bOK := NumberValue(b)
	if aOK && bOK {
		return af == bf
	}

	return Stringify(a) == Stringify(b)
}
