package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Times of day are handled internally as milliseconds since midnight.
const (
	MinuteMillis = 60 * 1000
	HourMillis   = 60 * MinuteMillis
	DayMillis    = 24 * HourMillis
)

var rangePattern = regexp.MustCompile(`^(\d{1,2}:\d{2}(?::\d{2})?)\s*[-–]\s*(\d{1,2}:\d{2}(?::\d{2})?)$`)

// ParseClock parses "HH:MM" or "HH:MM:SS" into milliseconds of day.
// Empty or malformed input reports ok=false.
func ParseClock(value string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	h, ok := clockField(parts[0], 1, 23)
	if !ok {
		return 0, false
	}
	m, ok := clockField(parts[1], 2, 59)
	if !ok {
		return 0, false
	}
	s := 0
	if len(parts) == 3 {
		if s, ok = clockField(parts[2], 2, 59); !ok {
			return 0, false
		}
	}

	return h*HourMillis + m*MinuteMillis + s*1000, true
}

// clockField accepts minDigits..2 ASCII digits with a value up to max.
func clockField(s string, minDigits, max int) (int, bool) {
	if len(s) < minDigits || len(s) > 2 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil || v > max {
		return 0, false
	}
	return v, true
}

// FormatClock renders milliseconds of day as "HH:MM", wrapping past midnight.
func FormatClock(ms int) string {
	ms = wrapDay(ms)
	return fmt.Sprintf("%02d:%02d", ms/HourMillis, ms%HourMillis/MinuteMillis)
}

// FormatClockSeconds renders milliseconds of day as "HH:MM:SS", wrapping past midnight.
func FormatClockSeconds(ms int) string {
	ms = wrapDay(ms)
	return fmt.Sprintf("%02d:%02d:%02d", ms/HourMillis, ms%HourMillis/MinuteMillis, ms%MinuteMillis/1000)
}

func wrapDay(ms int) int {
	return ((ms % DayMillis) + DayMillis) % DayMillis
}

// ParseRange parses a "HH:MM-HH:MM" range into start and end milliseconds.
func ParseRange(value string) (start, end int, ok bool) {
	m := rangePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, 0, false
	}

	start, ok = ParseClock(m[1])
	if !ok {
		return 0, 0, false
	}
	end, ok = ParseClock(m[2])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// FormatRange renders a "HH:MM-HH:MM" range.
func FormatRange(start, end int) string {
	return FormatClock(start) + "-" + FormatClock(end)
}

// EffectiveStart resolves the start instant an item currently claims:
// the start of a range slot, a single-instant slot, or the StartTime hint.
func EffectiveStart(item Item) (int, bool) {
	if start, _, ok := ParseRange(item.TimeSlot); ok {
		return start, true
	}
	if start, ok := ParseClock(item.TimeSlot); ok {
		return start, true
	}
	return ParseClock(item.StartTime)
}
