package domain

import (
	"time"
)

// Schedule is a generated study plan owned by one user. StartDate anchors
// day-numbering for reminders: day 1 is the instant StartDate itself, and
// the day counter advances every 24h of elapsed time from there.
// RemindersEnabled implies StartDate != nil.
type Schedule struct {
	ID               string
	Title            string
	UserID           string
	RemindersEnabled bool
	StartDate        *time.Time
	PlanItems        []PlanItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PlanItem is one scheduled block of study work. Range is a free-text label
// produced by the upstream plan generator ("Day 3: 10:00am - 1:00pm"); it is
// parsed best-effort and never trusted to conform.
type PlanItem struct {
	ID        string
	Range     string
	Topic     string
	Subtopics []Subtopic
}

// Subtopic is the smallest trackable unit of study work.
type Subtopic struct {
	ID        string
	Title     string
	Completed bool
}

// FirstIncompleteSubtopic returns the first subtopic in stored order that has
// not been completed yet, or false when the whole item is done.
func (p *PlanItem) FirstIncompleteSubtopic() (Subtopic, bool) {
	for _, s := range p.Subtopics {
		if !s.Completed {
			return s, true
		}
	}
	return Subtopic{}, false
}

// DayNumber computes the 1-based day count for now relative to start using
// elapsed-time division. This intentionally does not snap to local midnight:
// a schedule started at 23:00 flips to day 2 at 23:00 the next evening, not
// at midnight. The original application behaves this way and reminders are
// tuned to it.
func DayNumber(now, start time.Time) int {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed/(24*time.Hour)) + 1
}
