// Package timerange parses the free-text range labels the upstream plan
// generator attaches to plan items, e.g. "Day 3: 10:00am - 1:00pm". The
// labels are produced by an LLM and cannot be trusted to conform, so every
// parser here is total: malformed input yields ok=false, never an error or
// a panic.
package timerange

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dayPattern   = regexp.MustCompile(`(?i)day\s+(\d+)\s*:`)
	clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)\s*-\s*(\d{1,2}):(\d{2})\s*(am|pm)`)
)

// ClockRange is a same-day time window in minutes since midnight.
type ClockRange struct {
	StartMinutes int
	EndMinutes   int
}

// ParseDayNumber extracts the integer from a "Day <n>:" marker anywhere in
// the label, case-insensitively.
func ParseDayNumber(label string) (int, bool) {
	m := dayPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseClockRange extracts two 12-hour clock tokens separated by a hyphen
// anywhere in the label and converts them to minutes since midnight.
// Standard 12-hour rules apply: 12am is 0, 12pm is 720.
func ParseClockRange(label string) (ClockRange, bool) {
	m := clockPattern.FindStringSubmatch(label)
	if m == nil {
		return ClockRange{}, false
	}

	start, ok := toMinutes(m[1], m[2], m[3])
	if !ok {
		return ClockRange{}, false
	}
	end, ok := toMinutes(m[4], m[5], m[6])
	if !ok {
		return ClockRange{}, false
	}

	return ClockRange{StartMinutes: start, EndMinutes: end}, true
}

func toMinutes(hourStr, minuteStr, period string) (int, bool) {
	hours, err := strconv.Atoi(hourStr)
	if err != nil || hours < 1 || hours > 12 {
		return 0, false
	}
	minutes, err := strconv.Atoi(minuteStr)
	if err != nil || minutes > 59 {
		return 0, false
	}

	switch strings.ToLower(period) {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}

	return hours*60 + minutes, true
}
