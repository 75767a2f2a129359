//go:build gcloud

package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/studypath/reminder-service/internal/domain"
	"github.com/studypath/reminder-service/internal/infra/agent"
)

type CloudTasksNotifier struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	maxRetries int
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

func NewCloudTasksNotifier(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksNotifier, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &CloudTasksNotifier{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
	}, nil
}

func (n *CloudTasksNotifier) SendReminder(ctx context.Context, candidate domain.ReminderCandidate) (string, error) {
	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		n.projectID, n.locationID, n.queueID)

	payload, err := json.Marshal(agent.ReminderRequest{
		Username:        candidate.Username,
		Email:           candidate.Email,
		CurrentSubtopic: candidate.SubtopicTitle,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	// Task names are deduplicated by Cloud Tasks, so naming the task after
	// the subtopic and the current hour bucket absorbs double-fires within
	// one bucket at the queue layer.
	taskName := fmt.Sprintf("projects/%s/locations/%s/queues/%s/tasks/%s-%s-%s",
		n.projectID, n.locationID, n.queueID,
		candidate.ScheduleID, candidate.SubtopicID, domain.BucketKey(time.Now()))

	task := &taskspb.Task{
		Name:         taskName,
		ScheduleTime: timestamppb.New(time.Now()),
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        n.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}

	req := &taskspb.CreateTaskRequest{
		Parent: queuePath,
		Task:   task,
	}

	var lastErr error
	for attempt := 0; attempt < n.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying reminder task registration",
				slog.String("schedule_id", candidate.ScheduleID),
				slog.String("subtopic_id", candidate.SubtopicID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		created, err := n.client.CreateTask(ctx, req)
		if err == nil {
			slog.Info("reminder task registered to Cloud Tasks",
				slog.String("task_name", created.Name),
				slog.String("email", candidate.Email),
			)
			return created.Name, nil
		}
		lastErr = err
		slog.Warn("failed to create reminder task",
			slog.String("schedule_id", candidate.ScheduleID),
			slog.String("error", err.Error()),
		)
	}

	return "", fmt.Errorf("failed to register reminder task after %d retries: %w", n.maxRetries, lastErr)
}

func (n *CloudTasksNotifier) Close() error {
	return n.client.Close()
}
