//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/studypath/reminder-service/internal/config"
	"github.com/studypath/reminder-service/internal/infra/agent"
	"github.com/studypath/reminder-service/internal/infra/notifier"
	"github.com/studypath/reminder-service/internal/observability"
	"github.com/studypath/reminder-service/internal/observability/logging"
)

// initNotifier delivers reminders synchronously through the agent client in
// local builds.
func initNotifier(_ context.Context, _ *config.Config, agentClient *agent.Client) (notifier.Notifier, func() error, error) {
	return notifier.NewAgentNotifier(agentClient), nil, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "reminder-service"
	}

	env := logging.EnvDev
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
		SamplingRate: 1.0,
	})
}
