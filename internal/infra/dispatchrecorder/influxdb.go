//go:build !gcloud

package dispatchrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/studypath/reminder-service/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.DispatchRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "dispatch result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, dispatch result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "dispatch result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordDispatches(ctx context.Context, records []domain.DispatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		runID := record.RunID
		if runID == "" {
			runID = "default"
		}

		// Use real time as timestamp to prevent overwrites between cycles
		// driven by the same virtual time.
		pointTime := time.Now()

		point := influxdb2.NewPoint(
			"dispatch_result",
			map[string]string{
				"run_id":  runID,
				"outcome": record.Outcome,
				"cycle":   record.CycleTime.UTC().Format(time.RFC3339),
			},
			map[string]any{
				"schedule_id":    record.ScheduleID,
				"schedule_title": record.ScheduleTitle,
				"email":          record.Email,
				"subtopic":       record.SubtopicTitle,
				"error":          record.Error,
				"cycle_unix":     record.CycleTime.Unix(),
			},
			pointTime,
		)

		if err := r.writeAPI.WritePoint(ctx, point); err != nil {
			slog.WarnContext(ctx, "failed to write dispatch result to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("schedule_id", record.ScheduleID),
				slog.String("outcome", record.Outcome),
			)
		}
	}

	return nil
}

func (r *influxDBRecorder) RecordCycleSummary(ctx context.Context, record domain.CycleSummaryRecord) error {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	point := influxdb2.NewPoint(
		"dispatch_cycle",
		map[string]string{
			"run_id": runID,
			"cycle":  record.CycleTime.UTC().Format(time.RFC3339),
		},
		map[string]any{
			"schedules_read":   record.SchedulesRead,
			"total_candidates": record.TotalCandidates,
			"sent_count":       record.SentCount,
			"failed_count":     record.FailedCount,
			"skipped_count":    record.SkippedCount,
			"cycle_unix":       record.CycleTime.Unix(),
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write cycle summary to InfluxDB",
			slog.String("error", err.Error()),
			slog.Time("cycle", record.CycleTime),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
