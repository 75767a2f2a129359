package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/testutil"
)

func TestAlreadyNotified(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	guard := NewRedisGuard(client)

	bucket := time.Date(2024, time.January, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		scheduleID string
		subtopicID string
		setup      func(t *testing.T)
		expected   bool
	}{
		{
			name:       "no marker returns false",
			scheduleID: "sched-1",
			subtopicID: "sub-1",
			setup:      func(t *testing.T) {},
			expected:   false,
		},
		{
			name:       "existing marker returns true",
			scheduleID: "sched-2",
			subtopicID: "sub-2",
			setup: func(t *testing.T) {
				marker := domain.NewNotifiedMarker("sched-2", "sub-2", bucket)
				if err := guard.MarkNotified(ctx, marker); err != nil {
					t.Fatalf("failed to set up test data: %v", err)
				}
			},
			expected: true,
		},
		{
			name:       "marker for another subtopic does not match",
			scheduleID: "sched-2",
			subtopicID: "sub-3",
			setup:      func(t *testing.T) {},
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			notified, err := guard.AlreadyNotified(ctx, tt.scheduleID, tt.subtopicID, bucket)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if notified != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, notified)
			}
		})
	}
}

func TestAlreadyNotifiedBucketBoundaries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	testutil.FlushRedis(ctx, t, client)
	guard := NewRedisGuard(client)

	markedAt := time.Date(2024, time.January, 15, 14, 5, 0, 0, time.UTC)
	marker := domain.NewNotifiedMarker("sched-1", "sub-1", markedAt)
	if err := guard.MarkNotified(ctx, marker); err != nil {
		t.Fatalf("failed to mark notified: %v", err)
	}

	tests := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{
			name:     "same minute",
			at:       markedAt,
			expected: true,
		},
		{
			name:     "later in the same hour",
			at:       time.Date(2024, time.January, 15, 14, 59, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "next hour is a fresh bucket",
			at:       time.Date(2024, time.January, 15, 15, 5, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notified, err := guard.AlreadyNotified(ctx, "sched-1", "sub-1", tt.at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if notified != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, notified)
			}
		})
	}
}

func TestMarkNotifiedRejectsNilMarker(t *testing.T) {
	guard := NewRedisGuard(nil)

	if err := guard.MarkNotified(context.Background(), nil); err != ErrInvalidMarkerData {
		t.Errorf("expected ErrInvalidMarkerData, got %v", err)
	}
}
