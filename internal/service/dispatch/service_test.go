package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/infra/notifier"
	"github.com/studypath/reminder-service/internal/service/selector"
)

// createTestService wires a Service without metrics, matching production
// wiring otherwise.
func createTestService(repo domain.ScheduleRepository, n notifier.Notifier, guard domain.DedupGuard) *Service {
	return NewService(repo, n, guard, selector.New(), nil, time.Second)
}

func activeSnapshot(scheduleID, email string, subtopics ...domain.Subtopic) *domain.ScheduleWithOwner {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	return &domain.ScheduleWithOwner{
		Schedule: &domain.Schedule{
			ID:               scheduleID,
			Title:            "Go Fundamentals Plan",
			UserID:           "user-1",
			RemindersEnabled: true,
			StartDate:        &start,
			PlanItems: []domain.PlanItem{
				{
					ID:        "item-1",
					Range:     "Day 1: 10:00am - 1:00pm",
					Topic:     "Goroutines",
					Subtopics: subtopics,
				},
			},
		},
		Owner: &domain.User{
			ID:       "user-1",
			Email:    email,
			Username: "learner",
		},
	}
}

// activeNow is inside the plan item's window and inside the notify bucket.
var activeNow = time.Date(2024, time.January, 1, 10, 5, 0, 0, time.Local)

func TestRunCycle_DispatchesOneReminderPerDueItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	mockNotifier := notifier.NewMockNotifier(ctrl)

	mockRepo.EXPECT().
		ListReminderEnabled(gomock.Any()).
		Return([]*domain.ScheduleWithOwner{
			activeSnapshot("sched-1", "learner@example.com",
				domain.Subtopic{ID: "sub-1", Title: "Channels basics", Completed: true},
				domain.Subtopic{ID: "sub-2", Title: "Select statement", Completed: false},
			),
		}, nil)

	mockNotifier.EXPECT().
		SendReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, candidate domain.ReminderCandidate) (string, error) {
			if candidate.Email != "learner@example.com" {
				t.Errorf("email: got %q, want %q", candidate.Email, "learner@example.com")
			}
			if candidate.SubtopicTitle != "Select statement" {
				t.Errorf("subtopic: got %q, want %q", candidate.SubtopicTitle, "Select statement")
			}
			return "reminder email sent", nil
		})

	svc := createTestService(mockRepo, mockNotifier, nil)
	resp, err := svc.RunCycle(context.Background(), activeNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TotalCandidates != 1 {
		t.Errorf("TotalCandidates: got %d, want 1", resp.TotalCandidates)
	}
	if resp.SuccessCount != 1 {
		t.Errorf("SuccessCount: got %d, want 1", resp.SuccessCount)
	}
	if resp.FailedCount != 0 {
		t.Errorf("FailedCount: got %d, want 0", resp.FailedCount)
	}
	if len(resp.Results) != 1 || resp.Results[0].AgentResponse != "reminder email sent" {
		t.Errorf("unexpected results: %+v", resp.Results)
	}
}

func TestRunCycle_NotifierFailureIsIsolatedPerCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	mockNotifier := notifier.NewMockNotifier(ctrl)

	snapA := activeSnapshot("sched-a", "a@example.com",
		domain.Subtopic{ID: "sub-a", Title: "Topic A", Completed: false},
	)
	snapB := activeSnapshot("sched-b", "b@example.com",
		domain.Subtopic{ID: "sub-b", Title: "Topic B", Completed: false},
	)

	mockRepo.EXPECT().
		ListReminderEnabled(gomock.Any()).
		Return([]*domain.ScheduleWithOwner{snapA, snapB}, nil)

	mockNotifier.EXPECT().
		SendReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, candidate domain.ReminderCandidate) (string, error) {
			if candidate.Email == "a@example.com" {
				return "", errors.New("agent unavailable")
			}
			return "sent", nil
		}).
		Times(2)

	svc := createTestService(mockRepo, mockNotifier, nil)
	resp, err := svc.RunCycle(context.Background(), activeNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.SuccessCount != 1 || resp.FailedCount != 1 {
		t.Fatalf("got success=%d failed=%d, want 1 and 1", resp.SuccessCount, resp.FailedCount)
	}

	var failedItem, sentItem *ResultItem
	for i := range resp.Results {
		if resp.Results[i].Success {
			sentItem = &resp.Results[i]
		} else {
			failedItem = &resp.Results[i]
		}
	}
	if failedItem == nil || failedItem.Email != "a@example.com" || failedItem.Error == "" {
		t.Errorf("failed item not recorded correctly: %+v", failedItem)
	}
	if sentItem == nil || sentItem.Email != "b@example.com" {
		t.Errorf("successful item not recorded correctly: %+v", sentItem)
	}
}

func TestRunCycle_BulkReadFailureAbortsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	mockRepo.EXPECT().
		ListReminderEnabled(gomock.Any()).
		Return(nil, errors.New("database unavailable"))

	svc := createTestService(mockRepo, notifier.NewMockNotifier(ctrl), nil)
	if _, err := svc.RunCycle(context.Background(), activeNow); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRunCycle_NoCandidatesOutsideNotifyBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	mockRepo.EXPECT().
		ListReminderEnabled(gomock.Any()).
		Return([]*domain.ScheduleWithOwner{
			activeSnapshot("sched-1", "learner@example.com",
				domain.Subtopic{ID: "sub-1", Title: "Channels basics", Completed: false},
			),
		}, nil)

	// 10:20 is inside the study window but past the notify bucket.
	at1020 := time.Date(2024, time.January, 1, 10, 20, 0, 0, time.Local)

	svc := createTestService(mockRepo, notifier.NewMockNotifier(ctrl), nil)
	resp, err := svc.RunCycle(context.Background(), at1020)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TotalCandidates != 0 {
		t.Errorf("TotalCandidates: got %d, want 0", resp.TotalCandidates)
	}
	if resp.SchedulesRead != 1 {
		t.Errorf("SchedulesRead: got %d, want 1", resp.SchedulesRead)
	}
}

func TestRunCycle_DedupGuardSkipsAlreadyNotified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	mockNotifier := notifier.NewMockNotifier(ctrl)
	mockGuard := domain.NewMockDedupGuard(ctrl)

	mockRepo.EXPECT().
		ListReminderEnabled(gomock.Any()).
		Return([]*domain.ScheduleWithOwner{
			activeSnapshot("sched-1", "learner@example.com",
				domain.Subtopic{ID: "sub-1", Title: "Channels basics", Completed: false},
			),
		}, nil)

	mockGuard.EXPECT().
		AlreadyNotified(gomock.Any(), "sched-1", "sub-1", activeNow).
		Return(true, nil)

	svc := createTestService(mockRepo, mockNotifier, mockGuard)
	resp, err := svc.RunCycle(context.Background(), activeNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SkippedCount != 1 {
		t.Errorf("SkippedCount: got %d, want 1", resp.SkippedCount)
	}
	if resp.SuccessCount != 0 || resp.FailedCount != 0 {
		t.Errorf("got success=%d failed=%d, want 0 and 0", resp.SuccessCount, resp.FailedCount)
	}
}

func TestRunCycle_DedupGuardErrorFallsBackToDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	mockNotifier := notifier.NewMockNotifier(ctrl)
	mockGuard := domain.NewMockDedupGuard(ctrl)

	mockRepo.EXPECT().
		ListReminderEnabled(gomock.Any()).
		Return([]*domain.ScheduleWithOwner{
			activeSnapshot("sched-1", "learner@example.com",
				domain.Subtopic{ID: "sub-1", Title: "Channels basics", Completed: false},
			),
		}, nil)

	mockGuard.EXPECT().
		AlreadyNotified(gomock.Any(), "sched-1", "sub-1", activeNow).
		Return(false, errors.New("redis down"))

	mockNotifier.EXPECT().
		SendReminder(gomock.Any(), gomock.Any()).
		Return("sent", nil)

	mockGuard.EXPECT().
		MarkNotified(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := createTestService(mockRepo, mockNotifier, mockGuard)
	resp, err := svc.RunCycle(context.Background(), activeNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SuccessCount != 1 {
		t.Errorf("SuccessCount: got %d, want 1", resp.SuccessCount)
	}
}

func TestRunCycle_SlowNotifierIsBoundedByTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	mockNotifier := notifier.NewMockNotifier(ctrl)

	mockRepo.EXPECT().
		ListReminderEnabled(gomock.Any()).
		Return([]*domain.ScheduleWithOwner{
			activeSnapshot("sched-1", "learner@example.com",
				domain.Subtopic{ID: "sub-1", Title: "Channels basics", Completed: false},
			),
		}, nil)

	mockNotifier.EXPECT().
		SendReminder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.ReminderCandidate) (string, error) {
			// Simulate a notifier that blocks until the per-candidate
			// timeout fires.
			<-ctx.Done()
			return "", ctx.Err()
		})

	svc := NewService(mockRepo, mockNotifier, nil, selector.New(), nil, 10*time.Millisecond)
	resp, err := svc.RunCycle(context.Background(), activeNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.FailedCount != 1 {
		t.Errorf("FailedCount: got %d, want 1", resp.FailedCount)
	}
}
