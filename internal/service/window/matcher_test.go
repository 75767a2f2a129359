package window

import (
	"testing"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		now   int
		want  bool
	}{
		{name: "inside window", start: 600, end: 780, now: 660, want: true},
		{name: "at start boundary", start: 600, end: 780, now: 600, want: true},
		{name: "at end boundary", start: 600, end: 780, now: 780, want: true},
		{name: "one minute before start", start: 600, end: 780, now: 599, want: false},
		{name: "one minute after end", start: 600, end: 780, now: 781, want: false},
		{name: "zero-length window at the instant", start: 600, end: 600, now: 600, want: true},
		{name: "midnight start", start: 0, end: 30, now: 0, want: true},
		{name: "end of day", start: 1380, end: 1439, now: 1439, want: true},
		// start > end would be a midnight-crossing window; unsupported, never matches.
		{name: "inverted window before midnight", start: 1380, end: 120, now: 1400, want: false},
		{name: "inverted window after midnight", start: 1380, end: 120, now: 60, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.start, tt.end, tt.now); got != tt.want {
				t.Errorf("InRange(%d, %d, %d): got %v, want %v", tt.start, tt.end, tt.now, got, tt.want)
			}
		})
	}
}

func TestIsNotifyMoment(t *testing.T) {
	for minute := 0; minute < 60; minute++ {
		want := minute < NotifyWindowMinutes
		if got := IsNotifyMoment(minute); got != want {
			t.Errorf("IsNotifyMoment(%d): got %v, want %v", minute, got, want)
		}
	}
}
