package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/infra/agent"
)

func TestSaveDefaultsTitleToFirstTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduleRepo := domain.NewMockScheduleRepository(ctrl)
	mockUserRepo := domain.NewMockUserRepository(ctrl)

	mockUserRepo.EXPECT().
		GetByID(gomock.Any(), "user-1").
		Return(&domain.User{ID: "user-1"}, nil)

	mockScheduleRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, schedule *domain.Schedule) error {
			if schedule.Title != "Goroutines Plan" {
				t.Errorf("title: got %q, want %q", schedule.Title, "Goroutines Plan")
			}
			return nil
		})

	svc := NewService(mockScheduleRepo, mockUserRepo, nil)
	_, err := svc.Save(context.Background(), "user-1", "", []domain.PlanItem{
		{Range: "Day 1: 10:00am - 1:00pm", Topic: "Goroutines"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveRejectsEmptyPlan(t *testing.T) {
	svc := NewService(nil, nil, nil)
	_, err := svc.Save(context.Background(), "user-1", "Title", nil)
	if !errors.Is(err, ErrEmptyPlan) {
		t.Errorf("expected ErrEmptyPlan, got %v", err)
	}
}

func TestSaveRejectsUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := domain.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().
		GetByID(gomock.Any(), "ghost").
		Return(nil, domain.ErrUserNotFound)

	svc := NewService(domain.NewMockScheduleRepository(ctrl), mockUserRepo, nil)
	_, err := svc.Save(context.Background(), "ghost", "", []domain.PlanItem{{Topic: "Go"}})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetRemindersRequiresStartDateWhenEnabling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduleRepo := domain.NewMockScheduleRepository(ctrl)
	mockScheduleRepo.EXPECT().
		GetByID(gomock.Any(), "sched-1").
		Return(&domain.Schedule{ID: "sched-1", UserID: "user-1"}, nil)

	svc := NewService(mockScheduleRepo, nil, nil)
	_, err := svc.SetReminders(context.Background(), "sched-1", true, nil)
	if !errors.Is(err, domain.ErrStartDateRequired) {
		t.Errorf("expected ErrStartDateRequired, got %v", err)
	}
}

func TestSetRemindersDisablesOtherEnabledSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduleRepo := domain.NewMockScheduleRepository(ctrl)
	start := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		GetByID(gomock.Any(), "sched-new").
		Return(&domain.Schedule{ID: "sched-new", UserID: "user-1"}, nil)

	mockScheduleRepo.EXPECT().
		FindReminderEnabledByUser(gomock.Any(), "user-1").
		Return(&domain.Schedule{ID: "sched-old", UserID: "user-1", RemindersEnabled: true}, nil)

	mockScheduleRepo.EXPECT().
		SetReminders(gomock.Any(), "sched-old", false, nil).
		Return(&domain.Schedule{ID: "sched-old"}, nil)

	mockScheduleRepo.EXPECT().
		SetReminders(gomock.Any(), "sched-new", true, &start).
		Return(&domain.Schedule{ID: "sched-new", RemindersEnabled: true, StartDate: &start}, nil)

	svc := NewService(mockScheduleRepo, nil, nil)
	updated, err := svc.SetReminders(context.Background(), "sched-new", true, &start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.RemindersEnabled {
		t.Error("expected reminders enabled on updated schedule")
	}
}

func TestSetRemindersEnableWhenNoOtherEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduleRepo := domain.NewMockScheduleRepository(ctrl)
	start := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		GetByID(gomock.Any(), "sched-1").
		Return(&domain.Schedule{ID: "sched-1", UserID: "user-1"}, nil)

	mockScheduleRepo.EXPECT().
		FindReminderEnabledByUser(gomock.Any(), "user-1").
		Return(nil, domain.ErrScheduleNotFound)

	mockScheduleRepo.EXPECT().
		SetReminders(gomock.Any(), "sched-1", true, &start).
		Return(&domain.Schedule{ID: "sched-1", RemindersEnabled: true, StartDate: &start}, nil)

	svc := NewService(mockScheduleRepo, nil, nil)
	if _, err := svc.SetReminders(context.Background(), "sched-1", true, &start); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetRemindersDisableClearsStartDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduleRepo := domain.NewMockScheduleRepository(ctrl)

	mockScheduleRepo.EXPECT().
		GetByID(gomock.Any(), "sched-1").
		Return(&domain.Schedule{ID: "sched-1", UserID: "user-1", RemindersEnabled: true}, nil)

	mockScheduleRepo.EXPECT().
		SetReminders(gomock.Any(), "sched-1", false, nil).
		Return(&domain.Schedule{ID: "sched-1"}, nil)

	svc := NewService(mockScheduleRepo, nil, nil)
	if _, err := svc.SetReminders(context.Background(), "sched-1", false, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateMapsAgentPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAgent := agent.NewMockRepository(ctrl)
	mockAgent.EXPECT().
		GeneratePlan(gomock.Any(), agent.PlanRequest{
			Topic:         "Go",
			DurationUnit:  "days",
			DurationValue: 7,
		}).
		Return(&agent.PlanResponse{
			Plan: []agent.PlanItem{
				{
					Range: "Day 1: 9:00am - 11:00am",
					Topic: "Basics",
					Subtopics: []agent.Subtopic{
						{Title: "Syntax"},
						{Title: "Tooling"},
					},
				},
			},
		}, nil)

	svc := NewService(nil, nil, mockAgent)
	plan, err := svc.Generate(context.Background(), "Go", "days", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 1 {
		t.Fatalf("plan length: got %d, want 1", len(plan))
	}
	if plan[0].Topic != "Basics" || len(plan[0].Subtopics) != 2 {
		t.Errorf("unexpected plan item: %+v", plan[0])
	}
	if plan[0].Subtopics[0].Title != "Syntax" {
		t.Errorf("subtopic title: got %q, want %q", plan[0].Subtopics[0].Title, "Syntax")
	}
}
