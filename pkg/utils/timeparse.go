package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultClockTime is the canonical fallback for time phrases nothing else
// in the cascade understands. Callers record a warning instead of failing.
const DefaultClockTime = "12:00"

var (
	exactClockRe   = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
	aroundTimeRe   = regexp.MustCompile(`\baround\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	meridiemTimeRe = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	bareHourRe     = regexp.MustCompile(`\b(?:at|around|by)\s+(\d{1,2})(?::(\d{2}))?\b`)
	digitRe        = regexp.MustCompile(`\d`)
)

// periodTimes maps relative-period keywords to canonical clock times.
// Checked in order; "afternoon" must precede "noon" so the substring of the
// longer word never wins.
var periodTimes = []struct {
	re    *regexp.Regexp
	clock string
}{
	{regexp.MustCompile(`\bafternoon\b`), "15:00"},
	{regexp.MustCompile(`\btea\b`), "15:00"},
	{regexp.MustCompile(`\bmorning\b`), "09:00"},
	{regexp.MustCompile(`\bbreakfast\b`), "09:00"},
	{regexp.MustCompile(`\bnoon\b`), "12:00"},
	{regexp.MustCompile(`\blunch\b`), "12:00"},
	{regexp.MustCompile(`\bevening\b`), "18:00"},
	{regexp.MustCompile(`\bdinner\b`), "18:00"},
	{regexp.MustCompile(`\bnight\b`), "21:00"},
	{regexp.MustCompile(`\bdrinks\b`), "21:00"},
}

var (
	pmBiasRe  = regexp.MustCompile(`\b(dinner|steak|supper|evening|night|drinks|cocktails?)\b`)
	amBiasRe  = regexp.MustCompile(`\b(breakfast|coffee|morning|brunch|sunrise)\b`)
	midBiasRe = regexp.MustCompile(`\b(lunch|afternoon|tea)\b`)
)

// NormalizeClockTime converts a free-text time phrase into a canonical
// 24-hour "HH:MM" string. The phrase may be a bare clock value or a whole
// clause ("dinner around 8 in Mayfair"); surrounding words drive meridiem
// inference. The second return is false when the cascade fell through to
// DefaultClockTime, which callers should surface as a warning.
func NormalizeClockTime(phrase string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(phrase))
	if lower == "" {
		return DefaultClockTime, false
	}

	// Already canonical: the whole phrase is a clock value.
	if m := exactClockRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return formatClock(clampHour(hour), clampMinute(minute)), true
	}

	// Relative-period keywords only apply when no digits compete; with
	// digits present the keywords still bias meridiem inference below.
	if !digitRe.MatchString(lower) {
		for _, p := range periodTimes {
			if p.re.MatchString(lower) {
				return p.clock, true
			}
		}
		return DefaultClockTime, false
	}

	if m := aroundTimeRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if m[3] != "" {
			return formatClock(to24Hour(hour, m[3]), clampMinute(minute)), true
		}
		// Absent meridiem defaults to PM for 1-11.
		if hour >= 1 && hour <= 11 {
			hour += 12
		}
		return formatClock(clampHour(hour), clampMinute(minute)), true
	}

	if m := meridiemTimeRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		return formatClock(to24Hour(hour, m[3]), clampMinute(minute)), true
	}

	if m := bareHourRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		return formatClock(inferMeridiemHour(lower, hour), clampMinute(minute)), true
	}

	return DefaultClockTime, false
}

// inferMeridiemHour resolves a bare 1-12 hour using context words from the
// surrounding clause, defaulting to PM for 1-11 when nothing biases it.
func inferMeridiemHour(lower string, hour int) int {
	if hour < 1 || hour > 12 {
		return clampHour(hour)
	}
	switch {
	case pmBiasRe.MatchString(lower):
		if hour >= 1 && hour <= 11 {
			return hour + 12
		}
	case amBiasRe.MatchString(lower):
		if hour == 12 {
			return 12
		}
		return hour
	case midBiasRe.MatchString(lower):
		if hour >= 1 && hour <= 5 {
			return hour + 12
		}
		return hour
	default:
		if hour >= 1 && hour <= 11 {
			return hour + 12
		}
	}
	return hour
}

func to24Hour(hour int, meridiem string) int {
	hour = clampHour(hour)
	switch meridiem {
	case "am":
		if hour == 12 {
			return 0
		}
		return hour
	case "pm":
		if hour == 12 {
			return 12
		}
		if hour >= 1 && hour <= 11 {
			return hour + 12
		}
	}
	return hour
}

func clampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > 23 {
		return 23
	}
	return h
}

func clampMinute(m int) int {
	if m < 0 {
		return 0
	}
	if m > 59 {
		return 59
	}
	return m
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// CombineDateTime anchors a canonical "HH:MM" clock string on the given date.
func CombineDateTime(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// AddDayIfBefore shifts end one day forward when it falls before start, so
// duration math across midnight stays positive.
func AddDayIfBefore(start, end time.Time) time.Time {
	if end.Before(start) {
		return end.AddDate(0, 0, 1)
	}
	return end
}

// CrowdBucket maps a timestamp to the gazetteer crowd-level buckets. Weekends
// override the time-of-day split.
func CrowdBucket(t time.Time) string {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return "weekend"
	}
	switch h := t.Hour(); {
	case h < 12:
		return "morning"
	case h < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

// ActivityBucket maps a timestamp to the filler-activity table buckets.
func ActivityBucket(t time.Time) string {
	switch h := t.Hour(); {
	case h < 11:
		return "morning"
	case h < 14:
		return "midday"
	case h < 17:
		return "afternoon"
	default:
		return "evening"
	}
}
