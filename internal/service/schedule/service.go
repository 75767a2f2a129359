// Package schedule implements plan persistence, the reminder toggle, and
// subtopic progress updates.
package schedule

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/infra/agent"
)

var ErrEmptyPlan = errors.New("plan must contain at least one item")

type Service struct {
	scheduleRepo domain.ScheduleRepository
	userRepo     domain.UserRepository
	agentRepo    agent.Repository
}

func NewService(scheduleRepo domain.ScheduleRepository, userRepo domain.UserRepository, agentRepo agent.Repository) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		agentRepo:    agentRepo,
	}
}

// Generate proxies a plan request to the study agent and returns the parsed
// plan without persisting it. Saving is a separate, explicit call.
func (s *Service) Generate(ctx context.Context, topic, durationUnit string, durationValue int) ([]domain.PlanItem, error) {
	resp, err := s.agentRepo.GeneratePlan(ctx, agent.PlanRequest{
		Topic:         topic,
		DurationUnit:  durationUnit,
		DurationValue: durationValue,
	})
	if err != nil {
		return nil, err
	}

	items := make([]domain.PlanItem, 0, len(resp.Plan))
	for _, item := range resp.Plan {
		subs := make([]domain.Subtopic, 0, len(item.Subtopics))
		for _, sub := range item.Subtopics {
			subs = append(subs, domain.Subtopic{
				Title:     sub.Title,
				Completed: sub.Completed,
			})
		}
		items = append(items, domain.PlanItem{
			Range:     item.Range,
			Topic:     item.Topic,
			Subtopics: subs,
		})
	}

	slog.InfoContext(ctx, "plan generated",
		slog.String("topic", topic),
		slog.Int("item_count", len(items)),
	)

	return items, nil
}

// Save persists a generated plan as a new schedule. The title defaults to
// the first plan item's topic when the caller leaves it empty.
func (s *Service) Save(ctx context.Context, userID, title string, plan []domain.PlanItem) (*domain.Schedule, error) {
	if len(plan) == 0 {
		return nil, ErrEmptyPlan
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if title == "" {
		title = plan[0].Topic + " Plan"
	}

	schedule := &domain.Schedule{
		Title:     title,
		UserID:    userID,
		PlanItems: plan,
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "schedule saved",
		slog.String("schedule_id", schedule.ID),
		slog.String("user_id", userID),
		slog.Int("item_count", len(plan)),
	)

	return schedule, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*domain.Schedule, error) {
	return s.scheduleRepo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "schedule deleted",
		slog.String("schedule_id", id),
	)
	return nil
}

// SetReminders toggles reminder delivery for one schedule. A user has at
// most one reminder-enabled schedule: enabling this one disables whichever
// other schedule currently holds the flag. Disabling clears the start date
// so a later re-enable must supply a fresh one.
func (s *Service) SetReminders(ctx context.Context, scheduleID string, enabled bool, startDate *time.Time) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if !enabled {
		return s.scheduleRepo.SetReminders(ctx, scheduleID, false, nil)
	}

	if startDate == nil {
		return nil, domain.ErrStartDateRequired
	}

	current, err := s.scheduleRepo.FindReminderEnabledByUser(ctx, schedule.UserID)
	if err != nil && !errors.Is(err, domain.ErrScheduleNotFound) {
		return nil, err
	}
	if current != nil && current.ID != scheduleID {
		if _, err := s.scheduleRepo.SetReminders(ctx, current.ID, false, nil); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "reminders moved off previously enabled schedule",
			slog.String("previous_schedule_id", current.ID),
			slog.String("schedule_id", scheduleID),
		)
	}

	return s.scheduleRepo.SetReminders(ctx, scheduleID, true, startDate)
}

func (s *Service) UpdateSubtopic(ctx context.Context, scheduleID, rangeLabel string, subIdx int, completed bool) (*domain.Subtopic, error) {
	subtopic, err := s.scheduleRepo.UpdateSubtopicCompletion(ctx, scheduleID, rangeLabel, subIdx, completed)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "subtopic completion updated",
		slog.String("schedule_id", scheduleID),
		slog.String("range", rangeLabel),
		slog.Int("sub_idx", subIdx),
		slog.Bool("completed", completed),
	)

	return subtopic, nil
}
