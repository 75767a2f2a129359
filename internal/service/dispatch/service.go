// Package dispatch is the effectful shell around the pure reminder core:
// one bulk read of reminder-enabled schedules, candidate selection, then one
// notifier call per candidate with per-candidate failure isolation.
package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/infra/notifier"
	"github.com/studypath/reminder-service/internal/observability/metrics"
	"github.com/studypath/reminder-service/internal/observability/tracing"
	"github.com/studypath/reminder-service/internal/service/selector"
)

const defaultDispatchTimeout = 30 * time.Second

type Service struct {
	scheduleRepo     domain.ScheduleRepository
	reminderNotifier notifier.Notifier
	dedupGuard       domain.DedupGuard
	candidateSel     *selector.Selector
	reminderMetrics  *metrics.ReminderMetrics
	dispatchTimeout  time.Duration
}

func NewService(
	scheduleRepo domain.ScheduleRepository,
	reminderNotifier notifier.Notifier,
	dedupGuard domain.DedupGuard,
	candidateSel *selector.Selector,
	reminderMetrics *metrics.ReminderMetrics,
	dispatchTimeout time.Duration,
) *Service {
	if dispatchTimeout <= 0 {
		dispatchTimeout = defaultDispatchTimeout
	}
	return &Service{
		scheduleRepo:     scheduleRepo,
		reminderNotifier: reminderNotifier,
		dedupGuard:       dedupGuard,
		candidateSel:     candidateSel,
		reminderMetrics:  reminderMetrics,
		dispatchTimeout:  dispatchTimeout,
	}
}

// RunCycle executes one dispatch cycle at the given instant. Only the bulk
// schedule read can fail the cycle; every later failure is scoped to its
// candidate and recorded in the response. The cycle holds no state between
// invocations, so a failed candidate is naturally retried on the next cron
// tick while its window and notify bucket still hold.
func (s *Service) RunCycle(ctx context.Context, now time.Time) (*Response, error) {
	snapshots, err := s.scheduleRepo.ListReminderEnabled(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read reminder-enabled schedules",
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordSchedulesRead(ctx, len(snapshots))
	}

	slog.DebugContext(ctx, "read reminder-enabled schedules",
		slog.Int("schedule_count", len(snapshots)),
		slog.Time("now", now),
	)

	var candidates []domain.ReminderCandidate
	for _, snapshot := range snapshots {
		candidates = append(candidates, s.candidateSel.Select(snapshot, now)...)
	}

	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordCandidatesSelected(ctx, len(candidates))
	}

	slog.InfoContext(ctx, "selected reminder candidates",
		slog.Int("candidate_count", len(candidates)),
	)

	results := make([]ResultItem, 0, len(candidates))
	successCount := 0
	failedCount := 0
	skippedCount := 0

	for _, candidate := range candidates {
		result := ResultItem{
			ScheduleID:    candidate.ScheduleID,
			ScheduleTitle: candidate.ScheduleTitle,
			Email:         candidate.Email,
			Subtopic:      candidate.SubtopicTitle,
			Range:         candidate.Range,
		}

		if skip, reason := s.checkDedup(ctx, candidate, now); skip {
			result.Skipped = true
			result.SkipReason = reason
			skippedCount++
			if s.reminderMetrics != nil {
				s.reminderMetrics.RecordDispatch(ctx, domain.OutcomeSkipped.String())
			}
			results = append(results, result)
			continue
		}

		agentResponse, err := s.deliver(ctx, candidate)
		if err != nil {
			slog.ErrorContext(ctx, "failed to dispatch reminder",
				slog.String("schedule_id", candidate.ScheduleID),
				slog.String("email", candidate.Email),
				slog.String("subtopic", candidate.SubtopicTitle),
				slog.String("error", err.Error()),
			)
			result.Success = false
			result.Error = err.Error()
			failedCount++
			if s.reminderMetrics != nil {
				s.reminderMetrics.RecordDispatch(ctx, domain.OutcomeFailed.String())
			}
			results = append(results, result)
			continue
		}

		slog.InfoContext(ctx, "reminder dispatched",
			slog.String("schedule_id", candidate.ScheduleID),
			slog.String("email", candidate.Email),
			slog.String("subtopic", candidate.SubtopicTitle),
		)

		s.markNotified(ctx, candidate, now)

		result.Success = true
		result.AgentResponse = agentResponse
		successCount++
		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordDispatch(ctx, domain.OutcomeSent.String())
		}
		results = append(results, result)
	}

	return &Response{
		SchedulesRead:   len(snapshots),
		TotalCandidates: len(candidates),
		SuccessCount:    successCount,
		FailedCount:     failedCount,
		SkippedCount:    skippedCount,
		Results:         results,
	}, nil
}

// deliver wraps the notifier call in a per-candidate timeout so one slow
// external call cannot stall the rest of the batch.
func (s *Service) deliver(ctx context.Context, candidate domain.ReminderCandidate) (string, error) {
	deliverCtx, span := tracing.StartDeliverySpan(ctx, candidate.ScheduleID, candidate.SubtopicID)
	defer span.End()

	deliverCtx, cancel := context.WithTimeout(deliverCtx, s.dispatchTimeout)
	defer cancel()

	response, err := s.reminderNotifier.SendReminder(deliverCtx, candidate)
	if err != nil {
		span.RecordError(err)
	}
	return response, err
}

func (s *Service) checkDedup(ctx context.Context, candidate domain.ReminderCandidate, now time.Time) (bool, string) {
	if s.dedupGuard == nil {
		return false, ""
	}

	notified, err := s.dedupGuard.AlreadyNotified(ctx, candidate.ScheduleID, candidate.SubtopicID, now)
	if err != nil {
		// A broken guard must not suppress reminders; fall back to the
		// stateless notify-bucket behavior.
		slog.WarnContext(ctx, "dedup check failed, treating as not notified",
			slog.String("schedule_id", candidate.ScheduleID),
			slog.String("subtopic_id", candidate.SubtopicID),
			slog.String("error", err.Error()),
		)
		return false, ""
	}
	if notified {
		slog.DebugContext(ctx, "skipping already notified subtopic",
			slog.String("schedule_id", candidate.ScheduleID),
			slog.String("subtopic_id", candidate.SubtopicID),
		)
		return true, "already notified this hour"
	}
	return false, ""
}

func (s *Service) markNotified(ctx context.Context, candidate domain.ReminderCandidate, now time.Time) {
	if s.dedupGuard == nil {
		return
	}

	marker := domain.NewNotifiedMarker(candidate.ScheduleID, candidate.SubtopicID, now)
	if err := s.dedupGuard.MarkNotified(ctx, marker); err != nil {
		slog.WarnContext(ctx, "failed to mark subtopic notified",
			slog.String("schedule_id", candidate.ScheduleID),
			slog.String("subtopic_id", candidate.SubtopicID),
			slog.String("error", err.Error()),
		)
	}
}
