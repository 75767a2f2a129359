package timerange

import (
	"testing"
)

func TestParseDayNumber(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantDay int
		wantOK  bool
	}{
		{
			name:    "canonical label",
			label:   "Day 12: 9:00am - 10:00am",
			wantDay: 12,
			wantOK:  true,
		},
		{
			name:    "single digit day",
			label:   "Day 1: 10:00am - 1:00pm",
			wantDay: 1,
			wantOK:  true,
		},
		{
			name:    "lowercase prefix",
			label:   "day 4: 2:00pm - 4:00pm",
			wantDay: 4,
			wantOK:  true,
		},
		{
			name:    "extra whitespace before colon",
			label:   "Day  7 : 8:00am - 9:30am",
			wantDay: 7,
			wantOK:  true,
		},
		{
			name:   "garbage",
			label:  "garbage",
			wantOK: false,
		},
		{
			name:   "day marker without colon",
			label:  "Day 3 10:00am - 1:00pm",
			wantOK: false,
		},
		{
			name:   "empty label",
			label:  "",
			wantOK: false,
		},
		{
			name:    "marker mid-string",
			label:   "Review session, Day 9: 6:00pm - 8:00pm",
			wantDay: 9,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := ParseDayNumber(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok && day != tt.wantDay {
				t.Errorf("day: got %d, want %d", day, tt.wantDay)
			}
		})
	}
}

func TestParseClockRange(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{
			name:      "morning to afternoon",
			label:     "Day 1: 10:00am - 1:00pm",
			wantStart: 600,
			wantEnd:   780,
			wantOK:    true,
		},
		{
			name:      "midnight edge case",
			label:     "Day 2: 12:00am - 12:30am",
			wantStart: 0,
			wantEnd:   30,
			wantOK:    true,
		},
		{
			name:      "noon",
			label:     "Day 5: 12:00pm - 1:15pm",
			wantStart: 720,
			wantEnd:   795,
			wantOK:    true,
		},
		{
			name:      "evening window",
			label:     "Day 3: 6:30pm - 9:00pm",
			wantStart: 1110,
			wantEnd:   1260,
			wantOK:    true,
		},
		{
			name:      "no surrounding day marker",
			label:     "9:00am - 11:00am focus block",
			wantStart: 540,
			wantEnd:   660,
			wantOK:    true,
		},
		{
			name:      "whitespace around hyphen",
			label:     "Day 1: 10:00am-1:00pm",
			wantStart: 600,
			wantEnd:   780,
			wantOK:    true,
		},
		{
			name:      "uppercase meridiem",
			label:     "Day 1: 10:00AM - 1:00PM",
			wantStart: 600,
			wantEnd:   780,
			wantOK:    true,
		},
		{
			name:   "missing meridiem",
			label:  "Day 1: 10:00 - 13:00",
			wantOK: false,
		},
		{
			name:   "single time only",
			label:  "Day 1: 10:00am",
			wantOK: false,
		},
		{
			name:   "garbage",
			label:  "whenever you feel like it",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClockRange(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.StartMinutes != tt.wantStart {
				t.Errorf("start: got %d, want %d", got.StartMinutes, tt.wantStart)
			}
			if got.EndMinutes != tt.wantEnd {
				t.Errorf("end: got %d, want %d", got.EndMinutes, tt.wantEnd)
			}
		})
	}
}

func TestParseClockRange_NeverPanicsOnHostileInput(t *testing.T) {
	labels := []string{
		"::::am - pm",
		"Day 1: 99:99am - 88:77pm",
		"Day 1: 0:00am - 0:30am",
		"\x00\xff",
	}
	for _, label := range labels {
		if _, ok := ParseClockRange(label); ok {
			t.Errorf("ParseClockRange(%q): expected not ok", label)
		}
	}
}

func TestParseClockRange_DayOverflowDoesNotAffectClockTokens(t *testing.T) {
	// An overflowing day number is a day-marker problem only; the clock
	// tokens are extracted independently of the rest of the label.
	label := "Day 99999999999999999999: 10:00am - 1:00pm"

	if _, ok := ParseDayNumber(label); ok {
		t.Error("ParseDayNumber: expected overflow to report not ok")
	}

	clock, ok := ParseClockRange(label)
	if !ok {
		t.Fatalf("ParseClockRange(%q): expected ok", label)
	}
	if clock.StartMinutes != 600 || clock.EndMinutes != 780 {
		t.Errorf("clock range: got {%d, %d}, want {600, 780}", clock.StartMinutes, clock.EndMinutes)
	}
}
