//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/studypath/reminder-service/internal/config"
	"github.com/studypath/reminder-service/internal/infra/agent"
	"github.com/studypath/reminder-service/internal/infra/notifier"
	"github.com/studypath/reminder-service/internal/observability"
	"github.com/studypath/reminder-service/internal/observability/logging"
)

// initNotifier enqueues reminder deliveries to Cloud Tasks instead of
// calling the agent synchronously.
func initNotifier(ctx context.Context, cfg *config.Config, _ *agent.Client) (notifier.Notifier, func() error, error) {
	if err := cfg.TaskQueue.Validate(); err != nil {
		return nil, nil, err
	}

	cloudTasksNotifier, err := notifier.NewCloudTasksNotifier(ctx, notifier.CloudTasksConfig{
		ProjectID:  cfg.TaskQueue.GCloudProjectID,
		LocationID: cfg.TaskQueue.GCloudLocationID,
		QueueID:    cfg.TaskQueue.GCloudQueueID,
		TargetURL:  cfg.TaskQueue.GCloudTargetURL,
		MaxRetries: cfg.TaskQueue.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("reminder notifier initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.TaskQueue.GCloudProjectID),
		slog.String("location", cfg.TaskQueue.GCloudLocationID),
		slog.String("queue", cfg.TaskQueue.GCloudQueueID),
	)

	cleanup := func() error {
		if err := cloudTasksNotifier.Close(); err != nil {
			slog.Warn("failed to close cloud tasks notifier", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return cloudTasksNotifier, cleanup, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "reminder-service"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:  env,
		LogLevel:     cfg.LogLevel,
		GCPProjectID: os.Getenv("GOOGLE_CLOUD_PROJECT"),
		SamplingRate: 0.1,
	})
}
