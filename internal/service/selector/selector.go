// Package selector decides what, if anything, a schedule should be reminded
// about at a given instant. It is pure over the schedule snapshot and the
// clock value it is handed, which keeps the decision logic testable without
// touching the database or the notifier.
package selector

import (
	"log/slog"
	"time"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/service/timerange"
	"github.com/studypath/reminder-service/internal/service/window"
)

type Selector struct{}

func New() *Selector {
	return &Selector{}
}

// Select returns the reminder candidates for one schedule at one instant:
// for every plan item scheduled for today whose clock window contains now,
// while now sits inside the notify bucket, the first incomplete subtopic
// becomes a candidate. Unparseable range labels are skipped, never fatal.
// Running Select twice against the same snapshot and instant yields the
// same candidates.
func (s *Selector) Select(snapshot *domain.ScheduleWithOwner, now time.Time) []domain.ReminderCandidate {
	sched := snapshot.Schedule
	if sched == nil || !sched.RemindersEnabled || sched.StartDate == nil {
		return nil
	}

	dayNumber := domain.DayNumber(now, *sched.StartDate)
	if dayNumber < 1 {
		// Schedule starts in the future.
		return nil
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	var candidates []domain.ReminderCandidate
	for _, item := range sched.PlanItems {
		itemDay, ok := timerange.ParseDayNumber(item.Range)
		if !ok {
			slog.Warn("plan item range has no day marker, skipping",
				slog.String("schedule_id", sched.ID),
				slog.String("range", item.Range),
			)
			continue
		}
		if itemDay != dayNumber {
			continue
		}

		clock, ok := timerange.ParseClockRange(item.Range)
		if !ok {
			slog.Warn("plan item range has no clock range, skipping",
				slog.String("schedule_id", sched.ID),
				slog.String("range", item.Range),
			)
			continue
		}
		if clock.StartMinutes > clock.EndMinutes {
			// Midnight-crossing windows are not supported.
			slog.Debug("plan item window crosses midnight, skipping",
				slog.String("schedule_id", sched.ID),
				slog.String("range", item.Range),
			)
			continue
		}

		if !window.InRange(clock.StartMinutes, clock.EndMinutes, nowMinutes) {
			continue
		}
		if !window.IsNotifyMoment(now.Minute()) {
			continue
		}

		subtopic, found := item.FirstIncompleteSubtopic()
		if !found {
			// The whole block is done, nothing to remind about.
			continue
		}

		candidate := domain.ReminderCandidate{
			ScheduleID:    sched.ID,
			ScheduleTitle: sched.Title,
			Topic:         item.Topic,
			Range:         item.Range,
			SubtopicID:    subtopic.ID,
			SubtopicTitle: subtopic.Title,
		}
		if snapshot.Owner != nil {
			candidate.Username = snapshot.Owner.Username
			candidate.Email = snapshot.Owner.Email
		}
		candidates = append(candidates, candidate)
	}

	return candidates
}
